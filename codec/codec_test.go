package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Key  string  `json:"key"`
	Vals []int32 `json:"vals"`
}

func TestRoundtrip(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := payload{Key: "samples", Vals: []int32{3, 1, 2}}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			require.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		require.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	require.False(t, ok)
}

func TestMustMarshal_DefaultsAndPanics(t *testing.T) {
	require.NotEmpty(t, MustMarshal(nil, payload{Key: "x"}))
	require.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
