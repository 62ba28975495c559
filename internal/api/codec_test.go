package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, CodecName, c.Name())

	b, err := c.Marshal(&StatsRequest{Date: "20261014"})
	require.NoError(t, err)
	var got StatsRequest
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, "20261014", got.Date)
	assert.Empty(t, got.Session)
}

func TestGuessResponseWireShape(t *testing.T) {
	b, err := jsonCodec{}.Marshal(&GuessResponse{
		Valid:     true,
		GameOver:  true,
		Letters:   []Letter{{Char: "a", Outcome: OutcomeCorrect}},
		Included:  []string{"a"},
		Excluded:  []string{},
		Available: []string{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"correct":false,"gameOver":true,"turnsUsed":0,
		"letters":[{"char":"a","outcome":"correct"}],"included":["a"],"excluded":[],"available":[]}`, string(b))

	b, err = jsonCodec{}.Marshal(&GuessResponse{TurnsUsed: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":false,"correct":false,"gameOver":false,"turnsUsed":2,
		"included":null,"excluded":null,"available":null}`, string(b))
}
