package ctaphid

import (
	"errors"
	"fmt"
)

// InitNonceSize 通道初始化随机数长度
const InitNonceSize = 8

// initResponseSize nonce(8) + cid(4) + 版本 4 字节 + 能力位(1)
const initResponseSize = 17

// ErrBadInitResponse INIT 响应载荷不足 17 字节
var ErrBadInitResponse = errors.New("bad init response payload")

// InitResponse CTAPHID_INIT 响应载荷
// INIT 是唯一一条载荷布局由 HID 层自身定义的命令，其余命令的载荷归上层解释
type InitResponse struct {
	Nonce    [InitNonceSize]byte // 回显主机请求中的随机数
	CID      ChannelID           // 设备分配的新通道
	Protocol byte                // CTAPHID 协议版本标识
	Major    byte
	Minor    byte
	Build    byte
	Caps     Capability
}

// Encode 序列化为 17 字节载荷
func (r *InitResponse) Encode() []byte {
	buf := make([]byte, initResponseSize)
	copy(buf[:8], r.Nonce[:])
	copy(buf[8:12], r.CID[:])
	buf[12] = r.Protocol
	buf[13] = r.Major
	buf[14] = r.Minor
	buf[15] = r.Build
	buf[16] = byte(r.Caps)
	return buf
}

// ParseInitResponse 从起始帧载荷解析 INIT 响应，只取前 17 字节
func ParseInitResponse(payload []byte) (*InitResponse, error) {
	if len(payload) < initResponseSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadInitResponse, len(payload))
	}
	r := &InitResponse{
		Protocol: payload[12],
		Major:    payload[13],
		Minor:    payload[14],
		Build:    payload[15],
		Caps:     Capability(payload[16]),
	}
	copy(r.Nonce[:], payload[:8])
	copy(r.CID[:], payload[8:12])
	return r, nil
}

// ImplementsWink 设备支持 WINK 命令
func (r *InitResponse) ImplementsWink() bool { return r.Caps&CapWink != 0 }

// ImplementsCBOR 设备支持 CBOR 命令 (CTAP2)
func (r *InitResponse) ImplementsCBOR() bool { return r.Caps&CapCBOR != 0 }

// NotImplementsMsg 设备不支持 MSG 命令 (CTAP1/U2F)
func (r *InitResponse) NotImplementsMsg() bool { return r.Caps&CapNMsg != 0 }
