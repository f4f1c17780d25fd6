package ctaphid

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrBadReportLen 报文体长度不是 64 字节
var ErrBadReportLen = errors.New("bad report length")

// IsInitReport 判断 64 字节报文体是否为起始帧
// 接收方在选择解析器之前只看 cid 后首字节的高位
func IsInitReport(body []byte) bool {
	return len(body) > 4 && body[4]&frameInit != 0
}

// ParseInitPacket 从报文体（64 字节，不含 report ID 槽位）重建起始帧
// 不复核帧类型：调用方已经通过 IsInitReport 选定了帧种类
// 命令按部分映射解码，未定义命令读回 CmdInvalid
func ParseInitPacket(body []byte) (*InitPacket, error) {
	if len(body) != ReportBodySize {
		return nil, fmt.Errorf("%w: %d", ErrBadReportLen, len(body))
	}
	p := &InitPacket{
		Cmd:  ParseCommand(body[4] &^ frameInit),
		Size: binary.BigEndian.Uint16(body[5:7]),
	}
	copy(p.CID[:], body[:4])
	copy(p.Payload[:], body[7:])
	return p, nil
}

// ParseContPacket 从报文体重建续传帧。序号原样读回，不做高位复核
func ParseContPacket(body []byte) (*ContPacket, error) {
	if len(body) != ReportBodySize {
		return nil, fmt.Errorf("%w: %d", ErrBadReportLen, len(body))
	}
	p := &ContPacket{Seq: body[4]}
	copy(p.CID[:], body[:4])
	copy(p.Payload[:], body[5:])
	return p, nil
}
