package bus

import "bytes"

const frameSeparator = 0x00

// EncodeFrame builds the wire frame used by socket transports: topic, a zero
// byte, then the payload.
func EncodeFrame(topic string, payload []byte) []byte {
	frame := make([]byte, 0, len(topic)+1+len(payload))
	frame = append(frame, topic...)
	frame = append(frame, frameSeparator)
	return append(frame, payload...)
}

// DecodeFrame splits a frame at its first zero byte. A frame without a
// separator has an empty topic and is all payload.
func DecodeFrame(frame []byte) (string, []byte) {
	i := bytes.IndexByte(frame, frameSeparator)
	if i < 0 {
		return "", frame
	}
	return string(frame[:i]), frame[i+1:]
}
