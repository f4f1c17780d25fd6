// Package ctaphid 实现 CTAPHID 传输的报文帧编解码
// 格式（完整 65 字节 HID 报文）：
//
//	reportID(1, 恒0) + cid(4) + 起始帧[0x80|cmd(1) + bcnt(2, 大端) + payload(57)]
//	reportID(1, 恒0) + cid(4) + 续传帧[seq(1, 高位恒0) + payload(59)]
//
// 本包只负责单帧的字节布局；分片循环、重组、USB 读写均由上层完成
package ctaphid

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// ReportSize 完整 HID 报文长度，含首字节 report ID 槽位（本接口恒为 0）
	ReportSize = 65

	// ReportBodySize 去掉 report ID 槽位后的报文体长度
	ReportBodySize = 64

	// InitPayloadSize 起始帧单帧载荷容量（字节 8-64）
	InitPayloadSize = 57

	// ContPayloadSize 续传帧单帧载荷容量（字节 6-64）
	ContPayloadSize = 59

	// MaxSeq 续传帧序号上限：高位是帧类型判别位，序号只能占低 7 位
	MaxSeq = 0x7f
)

// frameInit 起始帧标志位：cid 后首字节高位为 1 即起始帧
const frameInit byte = 0x80

var (
	// ErrPayloadTooLarge 载荷超过单帧容量
	ErrPayloadTooLarge = errors.New("payload exceeds frame capacity")
	// ErrInvalidSeq 序号高位被占用
	ErrInvalidSeq = errors.New("sequence number out of range")
	// ErrInvalidCommand 构造侧传入未定义命令
	ErrInvalidCommand = errors.New("invalid command")
)

// Packet 两类帧共有的序列化能力
type Packet interface {
	// Encode 返回完整 65 字节报文，可直接作为 HID 报文发送
	Encode() []byte
}

// InitPacket 起始帧：携带命令与整条逻辑消息的总长度 (BCNT)
// Size 指该消息跨起始帧与全部续传帧的载荷总字节数，不是本帧自身的载荷长度
type InitPacket struct {
	CID     ChannelID
	Cmd     Command
	Size    uint16
	Payload [InitPayloadSize]byte // 未用尾部保持零填充
}

// NewInitPacket 构造起始帧
// payload 超容量返回 ErrPayloadTooLarge；cmd 不在已定义集合内返回 ErrInvalidCommand
func NewInitPacket(cid ChannelID, cmd Command, size uint16, payload []byte) (*InitPacket, error) {
	if !cmd.Valid() {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidCommand, byte(cmd))
	}
	if len(payload) > InitPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(payload), InitPayloadSize)
	}
	p := &InitPacket{CID: cid, Cmd: cmd, Size: size}
	copy(p.Payload[:], payload)
	return p, nil
}

// Encode 序列化为完整 65 字节报文
func (p *InitPacket) Encode() []byte {
	buf := make([]byte, ReportSize)
	copy(buf[1:5], p.CID[:])
	buf[5] = frameInit | p.Cmd.Byte()
	binary.BigEndian.PutUint16(buf[6:8], p.Size)
	copy(buf[8:], p.Payload[:])
	return buf
}

// ContPacket 续传帧：携带序号与下一段载荷
type ContPacket struct {
	CID     ChannelID
	Seq     byte
	Payload [ContPayloadSize]byte
}

// NewContPacket 构造续传帧
// seq 高位被占用会破坏帧类型判别，返回 ErrInvalidSeq
func NewContPacket(cid ChannelID, seq byte, payload []byte) (*ContPacket, error) {
	if seq > MaxSeq {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidSeq, seq)
	}
	if len(payload) > ContPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(payload), ContPayloadSize)
	}
	p := &ContPacket{CID: cid, Seq: seq}
	copy(p.Payload[:], payload)
	return p, nil
}

// Encode 序列化为完整 65 字节报文
func (p *ContPacket) Encode() []byte {
	buf := make([]byte, ReportSize)
	copy(buf[1:5], p.CID[:])
	buf[5] = p.Seq
	copy(buf[6:], p.Payload[:])
	return buf
}
