package domain_test

import (
	"testing"

	"github.com/TiVo/hxcache/internal/core/domain"
)

func TestSdk_BinaryFallback(t *testing.T) {
	tests := []struct {
		name string
		sdk  domain.Sdk
		want string
	}{
		{
			name: "configured binary",
			sdk:  domain.Sdk{HaxelibBin: domain.NewInternedString("/opt/haxe/haxelib")},
			want: "/opt/haxe/haxelib",
		},
		{
			name: "zero value falls back to PATH lookup name",
			sdk:  domain.Sdk{},
			want: "haxelib",
		},
		{
			name: "explicit empty string falls back too",
			sdk:  domain.Sdk{HaxelibBin: domain.NewInternedString("")},
			want: "haxelib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sdk.Binary(); got != tt.want {
				t.Errorf("Binary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSdk_Identity(t *testing.T) {
	a := domain.Sdk{
		HomePath: domain.NewInternedString("/opt/haxe"),
		Version:  domain.NewInternedString("4.3.4"),
	}
	same := domain.Sdk{
		HomePath: domain.NewInternedString("/opt/haxe"),
		Version:  domain.NewInternedString("4.3.4"),
	}
	other := domain.Sdk{
		HomePath: domain.NewInternedString("/opt/haxe"),
		Version:  domain.NewInternedString("4.2.0"),
	}

	if a.Identity() != same.Identity() {
		t.Error("equal installations must share an identity")
	}
	if a.Identity() == other.Identity() {
		t.Error("different versions must not share an identity")
	}
}
