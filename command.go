package ctaphid

import "fmt"

// Command CTAPHID 命令码（单字节线上值，不含起始帧标志位）
type Command byte

const (
	CmdInvalid   Command = 0x00
	CmdPing      Command = 0x01
	CmdMsg       Command = 0x03
	CmdLock      Command = 0x04
	CmdInit      Command = 0x06
	CmdWink      Command = 0x08
	CmdCbor      Command = 0x10
	CmdCancel    Command = 0x11
	CmdKeepalive Command = 0x3b
	CmdError     Command = 0x3f
)

// 厂商自定义命令区间。不属于上面的封闭集合：
// 解码仍归入 CmdInvalid，由上层决定是否按厂商命令另行处理
const (
	CmdVendorFirst Command = 0x40
	CmdVendorLast  Command = 0x7f
)

var commandNames = map[Command]string{
	CmdInvalid:   "INVALID",
	CmdPing:      "PING",
	CmdMsg:       "MSG",
	CmdLock:      "LOCK",
	CmdInit:      "INIT",
	CmdWink:      "WINK",
	CmdCbor:      "CBOR",
	CmdCancel:    "CANCEL",
	CmdKeepalive: "KEEPALIVE",
	CmdError:     "ERROR",
}

// ParseCommand 按线上字节解码命令
// 解码是全函数：未定义字节一律归入 CmdInvalid，
// 接收方不能因对端发来陌生命令而中断（仍可读 cid 并回 ErrCodeInvalidCmd）
func ParseCommand(b byte) Command {
	c := Command(b)
	if _, ok := commandNames[c]; ok {
		return c
	}
	return CmdInvalid
}

// Valid 判断是否属于已定义命令集合
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}

// Byte 返回固定线上字节
func (c Command) Byte() byte { return byte(c) }

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(0x%02x)", byte(c))
}
