package types_test

import (
	"testing"

	"github.com/bidscope/bidscope/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAlertKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind types.AlertKind
		want bool
	}{
		{
			name: "valid deadline",
			kind: types.AlertKindDeadline,
			want: true,
		},
		{
			name: "valid high-fit",
			kind: types.AlertKindHighFit,
			want: true,
		},
		{
			name: "valid watchlist",
			kind: types.AlertKindWatchlist,
			want: true,
		},
		{
			name: "invalid kind",
			kind: types.AlertKind("reminder"),
			want: false,
		},
		{
			name: "empty kind",
			kind: types.AlertKind(""),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.kind.IsValid()).True()
			} else {
				gt.B(t, tt.kind.IsValid()).False()
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Severity
		wantErr bool
	}{
		{
			name:    "valid info",
			input:   "info",
			want:    types.SeverityInfo,
			wantErr: false,
		},
		{
			name:    "valid warning",
			input:   "warning",
			want:    types.SeverityWarning,
			wantErr: false,
		},
		{
			name:    "valid critical",
			input:   "critical",
			want:    types.SeverityCritical,
			wantErr: false,
		},
		{
			name:    "invalid severity",
			input:   "fatal",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty severity",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseSeverity(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}
