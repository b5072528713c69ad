package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{
			name:     "empty_settings",
			settings: &Run{},
		},
		{
			name: "settings_with_values",
			settings: &Run{
				NoColor: true,
				Output:  "yaml",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			newCtx := IntoContext(ctx, tt.settings)

			if ctx == newCtx {
				t.Error("IntoContext() should return a new context")
			}
			retrieved, ok := newCtx.Value(settingsContextKey).(*Run)
			if !ok {
				t.Fatal("IntoContext() stored value is not *Run")
			}
			if retrieved != tt.settings {
				t.Errorf("IntoContext() stored different settings pointer")
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name       string
		setupCtx   func() context.Context
		wantOk     bool
		wantValues *Run
	}{
		{
			name: "context_with_settings",
			setupCtx: func() context.Context {
				return IntoContext(context.Background(), &Run{NoColor: true, Output: "json"})
			},
			wantOk:     true,
			wantValues: &Run{NoColor: true, Output: "json"},
		},
		{
			name:     "context_without_settings",
			setupCtx: context.Background,
			wantOk:   false,
		},
		{
			name: "context_with_wrong_type",
			setupCtx: func() context.Context {
				return context.WithValue(context.Background(), settingsContextKey, "wrong type")
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromContext(tt.setupCtx())
			if ok != tt.wantOk {
				t.Fatalf("FromContext() ok = %v; want %v", ok, tt.wantOk)
			}
			if !tt.wantOk {
				if got != nil {
					t.Errorf("FromContext() got = %v; want nil", got)
				}
				return
			}
			if *got != *tt.wantValues {
				t.Errorf("FromContext() = %+v; want %+v", got, tt.wantValues)
			}
		})
	}
}
