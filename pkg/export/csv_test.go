package export

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/anjalishikhare80/event-management-system/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParticipantsCSV(t *testing.T) {
	tests := []struct {
		name string
		regs []*entity.RegistrationWithUser
	}{
		{
			name: "no registrations yields header only",
			regs: nil,
		},
		{
			name: "one registration",
			regs: []*entity.RegistrationWithUser{
				{
					Registration: entity.Registration{
						FullName: "Alice Smith",
						Mobile:   "9999999999",
						Email:    "alice@example.com",
						College:  "Springfield Tech",
						Year:     "3",
						Branch:   "CSE",
					},
					Username: "alice",
				},
			},
		},
		{
			name: "several registrations keep order",
			regs: []*entity.RegistrationWithUser{
				{Registration: entity.Registration{FullName: "A", Mobile: "1", Email: "a@x", College: "C1", Year: "1", Branch: "B1"}},
				{Registration: entity.Registration{FullName: "B", Mobile: "2", Email: "b@x", College: "C2", Year: "2", Branch: "B2"}},
				{Registration: entity.Registration{FullName: "C", Mobile: "3", Email: "c@x", College: "C3", Year: "3", Branch: "B3"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := WriteParticipantsCSV(t.TempDir(), 42, tt.regs)
			require.NoError(t, err)
			defer os.Remove(path)

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			rows, err := csv.NewReader(f).ReadAll()
			require.NoError(t, err)

			// header row + one row per registration
			require.Len(t, rows, len(tt.regs)+1)
			assert.Equal(t, Header, rows[0])

			for i, reg := range tt.regs {
				assert.Equal(t, []string{
					reg.FullName, reg.Mobile, reg.Email, reg.College, reg.Year, reg.Branch,
				}, rows[i+1])
			}
		})
	}
}

func TestWriteParticipantsCSVUniqueTempNames(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteParticipantsCSV(dir, 1, nil)
	require.NoError(t, err)
	second, err := WriteParticipantsCSV(dir, 1, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
