package ctaphid

import (
	"errors"
	"fmt"
)

// ErrorCode CTAPHID 协议层错误码，设备经 CTAPHID_ERROR 报文回给主机
type ErrorCode byte

const (
	ErrCodeInvalidCmd   ErrorCode = 0x01
	ErrCodeInvalidPar   ErrorCode = 0x02
	ErrCodeInvalidLen   ErrorCode = 0x03
	ErrCodeInvalidSeq   ErrorCode = 0x04
	ErrCodeMsgTimeout   ErrorCode = 0x05
	ErrCodeChannelBusy  ErrorCode = 0x06
	ErrCodeLockRequired ErrorCode = 0x0a
	ErrCodeNA           ErrorCode = 0x0b
	ErrCodeOther        ErrorCode = 0x7f
)

var errorDescriptions = map[ErrorCode]string{
	ErrCodeInvalidCmd:   "the command in the request is invalid",
	ErrCodeInvalidPar:   "the parameter(s) in the request is invalid",
	ErrCodeInvalidLen:   "the length field (BCNT) is invalid for the request",
	ErrCodeInvalidSeq:   "the sequence does not match expected value",
	ErrCodeMsgTimeout:   "the message has timed out",
	ErrCodeChannelBusy:  "the device is busy for the requesting channel",
	ErrCodeLockRequired: "command requires channel lock",
	ErrCodeNA:           "reserved error",
	ErrCodeOther:        "unspecified error",
}

// ErrUnknownErrorCode 解码到未定义的错误码字节
var ErrUnknownErrorCode = errors.New("unknown error code")

// ParseErrorCode 按线上字节解码错误码
// 与命令解码不同，错误码没有兜底值：未定义字节显式失败
func ParseErrorCode(b byte) (ErrorCode, error) {
	e := ErrorCode(b)
	if _, ok := errorDescriptions[e]; !ok {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownErrorCode, b)
	}
	return e, nil
}

// Byte 返回固定线上字节
func (e ErrorCode) Byte() byte { return byte(e) }

// Description 返回固定的诊断描述
func (e ErrorCode) Description() string {
	if s, ok := errorDescriptions[e]; ok {
		return s
	}
	return "unknown error"
}

// Error 实现 error：错误码即协议向对端上报失败的词汇表
func (e ErrorCode) Error() string {
	return fmt.Sprintf("ctaphid: %s (0x%02x)", e.Description(), byte(e))
}
