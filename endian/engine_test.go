package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestWireEngine(t *testing.T) {
	engine := WireEngine()

	// PNG framing is big-endian on the wire
	require.Equal(t, binary.BigEndian, engine)

	// A record length field round trip
	bytes := make([]byte, 4)
	engine.PutUint32(bytes, 42)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x2A}, bytes)
	require.Equal(t, uint32(42), engine.Uint32(bytes))
}

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	// IsNativeLittleEndian and IsNativeBigEndian should be inverses
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian, "IsNativeLittleEndian and IsNativeBigEndian should return opposite values")
	require.True(t, littleEndian || bigEndian, "At least one endianness check should be true")
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Big endian should put MSB first
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestAppendOperations(t *testing.T) {
	engine := WireEngine()

	buf := make([]byte, 0, 8)
	buf = engine.AppendUint32(buf, 0x01020304)
	buf = engine.AppendUint32(buf, 0xCABD22D9)

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0xCA, 0xBD, 0x22, 0xD9}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf[0:4]))
	require.Equal(t, uint32(0xCABD22D9), engine.Uint32(buf[4:8]))
}
