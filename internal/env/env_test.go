package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("T_STR", " value ")
	t.Setenv("T_INT", "42")
	t.Setenv("T_BADINT", "x")
	t.Setenv("T_FLOAT", "2.5")
	t.Setenv("T_DUR", "1500ms")
	t.Setenv("T_SECS", "15")
	t.Setenv("T_BOOL", "Yes")
	t.Setenv("T_LIST", "a, b;;c\n")

	assert.Equal(t, "value", Get("T_STR", "def"))
	assert.Equal(t, "def", Get("T_MISSING", "def"))
	assert.Equal(t, 42, GetInt("T_INT", 1))
	assert.Equal(t, 1, GetInt("T_BADINT", 1))
	assert.Equal(t, 2.5, GetFloat("T_FLOAT", 1))
	assert.Equal(t, 1500*time.Millisecond, GetDuration("T_DUR", time.Second))
	assert.Equal(t, 15*time.Second, GetDuration("T_SECS", time.Second))
	assert.True(t, GetBool("T_BOOL", false))
	assert.True(t, GetBool("T_MISSING", true))
	assert.Equal(t, []string{"a", "b", "c"}, List("T_LIST"))
	assert.Nil(t, List("T_MISSING"))
}
