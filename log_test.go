package ctaphid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitPacketLogFields(t *testing.T) {
	p, err := NewInitPacket(ChannelID{0x11, 0x22, 0x33, 0x44}, CmdCbor, 300, []byte{0x01, 0x02})
	require.NoError(t, err)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, p.MarshalLogObject(enc))

	require.Equal(t, "11223344", enc.Fields["cid"])
	require.Equal(t, "CBOR", enc.Fields["cmd"])
	require.Equal(t, uint16(300), enc.Fields["bcnt"])
	// 载荷内容不进日志
	require.NotContains(t, enc.Fields, "payload")
}

func TestContPacketLogFields(t *testing.T) {
	p, err := NewContPacket(ChannelID{0xca, 0xfe, 0xba, 0xbe}, 9, nil)
	require.NoError(t, err)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, p.MarshalLogObject(enc))

	require.Equal(t, "cafebabe", enc.Fields["cid"])
	require.Equal(t, uint8(9), enc.Fields["seq"])
}

func TestInitResponseLogFields(t *testing.T) {
	r := &InitResponse{CID: ChannelID{0, 0, 0, 1}, Protocol: 2, Major: 1, Minor: 4, Build: 0, Caps: CapWink}

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, r.MarshalLogObject(enc))

	require.Equal(t, "00000001", enc.Fields["cid"])
	require.Equal(t, "1.4.0", enc.Fields["version"])
	require.Equal(t, uint8(CapWink), enc.Fields["caps"])
}
