package ctaphid

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorCodeWireValues(t *testing.T) {
	wire := map[ErrorCode]byte{
		ErrCodeInvalidCmd:   0x01,
		ErrCodeInvalidPar:   0x02,
		ErrCodeInvalidLen:   0x03,
		ErrCodeInvalidSeq:   0x04,
		ErrCodeMsgTimeout:   0x05,
		ErrCodeChannelBusy:  0x06,
		ErrCodeLockRequired: 0x0a,
		ErrCodeNA:           0x0b,
		ErrCodeOther:        0x7f,
	}

	if len(wire) != len(errorDescriptions) {
		t.Fatalf("error code set drifted: table %d, defined %d", len(wire), len(errorDescriptions))
	}

	for code, b := range wire {
		if code.Byte() != b {
			t.Errorf("wire byte 0x%02x, want 0x%02x", code.Byte(), b)
		}
		got, err := ParseErrorCode(b)
		if err != nil || got != code {
			t.Errorf("ParseErrorCode(0x%02x) = %v, %v", b, got, err)
		}
		if code.Description() == "" {
			t.Errorf("0x%02x missing description", b)
		}
	}
}

func TestParseErrorCodeUnknown(t *testing.T) {
	// 错误码没有兜底值：未定义字节必须显式失败
	for _, b := range []byte{0x00, 0x07, 0x10, 0xff} {
		if _, err := ParseErrorCode(b); !errors.Is(err, ErrUnknownErrorCode) {
			t.Errorf("ParseErrorCode(0x%02x): expected ErrUnknownErrorCode, got %v", b, err)
		}
	}
}

func TestErrorCodeAsError(t *testing.T) {
	var err error = ErrCodeChannelBusy
	if !strings.Contains(err.Error(), "busy") {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "0x06") {
		t.Fatalf("error text should carry the wire byte: %q", err.Error())
	}
}
