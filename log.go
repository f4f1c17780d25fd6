package ctaphid

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// MarshalLogObject 实现 zapcore.ObjectMarshaler，供传输层结构化记录解码结果
// 载荷可能含敏感数据，只记录元信息不记录内容
func (p *InitPacket) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("cid", hex.EncodeToString(p.CID[:]))
	enc.AddString("cmd", p.Cmd.String())
	enc.AddUint16("bcnt", p.Size)
	return nil
}

// MarshalLogObject 实现 zapcore.ObjectMarshaler
func (p *ContPacket) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("cid", hex.EncodeToString(p.CID[:]))
	enc.AddUint8("seq", p.Seq)
	return nil
}

// MarshalLogObject 实现 zapcore.ObjectMarshaler
func (r *InitResponse) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("cid", hex.EncodeToString(r.CID[:]))
	enc.AddUint8("protocol", r.Protocol)
	enc.AddString("version", fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Build))
	enc.AddUint8("caps", byte(r.Caps))
	return nil
}
