package part

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedManifest(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	require.Equal(t, []string{"SLG46140V", "SLG46620V", "SLG46621V"}, table.Names())
	require.Equal(t, "SLG46621V", table.Default())

	tests := []struct {
		part string
		want Budget
	}{
		{part: "SLG46140V", want: Budget{0, 6, 8, 2}},
		{part: "SLG46620V", want: Budget{2, 8, 16, 2}},
		{part: "SLG46621V", want: Budget{2, 8, 16, 2}},
	}
	for _, tt := range tests {
		budget, err := table.Lookup(tt.part)
		require.NoError(t, err, "part %s", tt.part)
		require.Equal(t, tt.want, budget, "part %s", tt.part)
		require.True(t, table.Valid(tt.part))
	}
}

func TestLookup_UnknownPart(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	_, err = table.Lookup("SLG99999X")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid part name "SLG99999X"`)
	require.Contains(t, err.Error(), "SLG46140V, SLG46620V, SLG46621V")
	require.False(t, table.Valid("SLG99999X"))
}

func TestBudget_String(t *testing.T) {
	require.Equal(t, "0,6,8,2", Budget{0, 6, 8, 2}.String())
	require.Equal(t, "2,8,16,2", Budget{2, 8, 16, 2}.String())
}

func TestLoad_RejectsBadManifests(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "three entries",
			src:     "part \"A\" {\n  luts    = [1, 2, 3]\n  default = true\n}\n",
			wantErr: "exactly 4 entries",
		},
		{
			name:    "five entries",
			src:     "part \"A\" {\n  luts    = [1, 2, 3, 4, 5]\n  default = true\n}\n",
			wantErr: "exactly 4 entries",
		},
		{
			name:    "negative entry",
			src:     "part \"A\" {\n  luts    = [1, -2, 3, 4]\n  default = true\n}\n",
			wantErr: "non-negative",
		},
		{
			name:    "non-number entry",
			src:     "part \"A\" {\n  luts    = [1, \"x\", 3, 4]\n  default = true\n}\n",
			wantErr: "must be a number",
		},
		{
			name:    "duplicate part",
			src:     "part \"A\" {\n  luts    = [1, 2, 3, 4]\n  default = true\n}\n\npart \"A\" {\n  luts = [1, 2, 3, 4]\n}\n",
			wantErr: `duplicate part "A"`,
		},
		{
			name:    "no default",
			src:     "part \"A\" {\n  luts = [1, 2, 3, 4]\n}\n",
			wantErr: "no default part",
		},
		{
			name:    "two defaults",
			src:     "part \"A\" {\n  luts    = [1, 2, 3, 4]\n  default = true\n}\n\npart \"B\" {\n  luts    = [1, 2, 3, 4]\n  default = true\n}\n",
			wantErr: "both marked default",
		},
		{
			name:    "no parts",
			src:     "",
			wantErr: "no parts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
