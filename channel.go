package ctaphid

// ChannelID 4 字节不透明通道标识，在一条物理传输上复用多个逻辑连接
// 本包只做拷贝与比较，不解释其内容
type ChannelID [4]byte

var (
	// BroadcastCID 广播通道，主机在 INIT 分配通道前使用
	BroadcastCID = ChannelID{0xff, 0xff, 0xff, 0xff}
	// ReservedCID 保留通道，不可分配
	ReservedCID = ChannelID{}
)

// Capability INIT 响应中的设备能力位
type Capability byte

const (
	CapWink Capability = 0x01 // 支持 WINK
	CapCBOR Capability = 0x04 // 支持 CBOR (CTAP2)
	CapNMsg Capability = 0x08 // 不支持 MSG (CTAP1/U2F)
)

// KEEPALIVE 载荷状态字节
const (
	StatusProcessing byte = 1 // 设备正在处理请求
	StatusUpNeeded   byte = 2 // 等待用户在场确认
)
