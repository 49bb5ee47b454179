package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Frame_Round_Trip(t *testing.T) {
	req := require.New(t)

	frame := EncodeFrame("room/general", []byte(`{"text":"hi"}`))
	topic, payload := DecodeFrame(frame)

	req.Equal("room/general", topic)
	req.Equal(`{"text":"hi"}`, string(payload))
}

func Test_Frame_Splits_On_First_Separator(t *testing.T) {
	req := require.New(t)

	topic, payload := DecodeFrame([]byte("a\x00b\x00c"))
	req.Equal("a", topic)
	req.Equal([]byte("b\x00c"), payload)
}

func Test_Frame_Without_Separator_Is_All_Payload(t *testing.T) {
	req := require.New(t)

	topic, payload := DecodeFrame([]byte("no-separator"))
	req.Empty(topic)
	req.Equal([]byte("no-separator"), payload)
}

func Test_Frame_Empty_Payload(t *testing.T) {
	req := require.New(t)

	topic, payload := DecodeFrame(EncodeFrame("presence/online", nil))
	req.Equal("presence/online", topic)
	req.Empty(payload)
}
