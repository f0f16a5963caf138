package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"lowercase", "0x52908400098527886e0f7030069857d2e4169ee7", true},
		{"mixed case", "0x52908400098527886E0F7030069857D2E4169EE7", true},
		{"uppercase prefix", "0X52908400098527886e0f7030069857d2e4169ee7", true},
		{"empty", "", false},
		{"no prefix", "52908400098527886e0f7030069857d2e4169ee7", false},
		{"too short", "0x5290840009852788", false},
		{"too long", "0x52908400098527886e0f7030069857d2e4169ee7ab", false},
		{"non-hex digit", "0x52908400098527886e0f7030069857d2e4169ez7", false},
		{"whitespace", "0x52908400098527886e0f7030069857d2e4169ee ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAddress(tt.address))
		})
	}
}
