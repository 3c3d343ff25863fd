package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "empty store returns ErrStoreEmpty",
			config:  Config{Store: ""},
			wantErr: ErrStoreEmpty,
		},
		{
			name:    "unknown timezone returns ErrTimezoneInvalid",
			config:  Config{Store: StoreSharePoint, Timezone: "Mars/Olympus_Mons"},
			wantErr: ErrTimezoneInvalid,
		},
		{
			name:    "UTC timezone is valid",
			config:  Config{Store: StoreSharePoint, Timezone: "UTC"},
			wantErr: nil,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{Store: StoreSharePoint, LogLevel: "chatty"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "empty timezone and log level are valid at config level",
			config:  Config{Store: StoreSharePoint},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
