package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "game_name,iwad,pwad,complevel,release_date,episode_name,episode_number,mission_name,mission_number,level_number,is_secret\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateFile_Valid(t *testing.T) {
	path := writeFile(t, "doom.csv", header+
		"The Ultimate Doom,DOOM.WAD,DOOM.WAD,3,1993-12-10,Knee-Deep in the Dead,1,Hangar,1,1,false\n"+
		"The Ultimate Doom,DOOM.WAD,DOOM.WAD,3,1993-12-10,Knee-Deep in the Dead,1,Military Base,9,9,true\n"+
		"The Ultimate Doom,DOOM.WAD,DOOM.WAD,3,1993-12-10,The Shores of Hell,2,Deimos Anomaly,1,10,false\n")

	c, err := (&CampaignValidator{}).validateFile(path)
	require.NoError(t, err)

	var out bytes.Buffer
	printTree(&out, c)
	assert.Equal(t, "1993-12-10 -- The Ultimate Doom (DOOM.WAD, episodic warp, complevel 3)\n"+
		"  E1 Knee-Deep in the Dead\n"+
		"    MAP01 E1M1 Hangar (DOOM.WAD)\n"+
		"    MAP09 E1M9 Military Base (DOOM.WAD) [secret]\n"+
		"  E2 The Shores of Hell\n"+
		"    MAP10 E2M1 Deimos Anomaly (DOOM.WAD)\n"+
		"2 episodes, 3 missions\n", out.String())
}

func TestValidateFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name: "inconsistent campaign field",
			body: "Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Entryway,1,1,false\n" +
				"Doom 2,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Underhalls,2,2,false\n",
			expected: "line 3: game_name 'Doom 2' differs from first row 'Doom II'",
		},
		{
			name: "skipped episode",
			body: "Doom,DOOM.WAD,DOOM.WAD,3,1993-12-10,E1,1,Hangar,1,1,false\n" +
				"Doom,DOOM.WAD,DOOM.WAD,3,1993-12-10,E3,3,Hell Keep,1,19,false\n",
			expected: "line 3: episode_number 3 does not follow 1",
		},
		{
			name: "duplicate mission",
			body: "Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Entryway,1,1,false\n" +
				"Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Underhalls,1,2,false\n",
			expected: "has mission_number 1 more than once",
		},
		{
			name: "duplicate level",
			body: "Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Entryway,1,1,false\n" +
				"Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,1,Underhalls,2,1,false\n",
			expected: "line 3: level_number 1 already used on line 2",
		},
		{
			name:     "unsupported iwad",
			body:     "Heretic,HERETIC.WAD,HERETIC.WAD,,1994-12-23,City of the Damned,1,The Docks,1,1,false\n",
			expected: "iwad HERETIC.WAD not supported yet",
		},
		{
			name:     "bad date",
			body:     "Doom II,DOOM2.WAD,DOOM2.WAD,2,30/09/1994,Hell on Earth,1,Entryway,1,1,false\n",
			expected: "release_date '30/09/1994' should be YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "campaign.csv", header+tt.body)

			_, err := (&CampaignValidator{}).validateFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestValidateFile_Extension(t *testing.T) {
	path := writeFile(t, "campaign.json", header)

	_, err := (&CampaignValidator{}).validateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have .csv extension")
}

func TestValidateFile_Malformed(t *testing.T) {
	path := writeFile(t, "campaign.csv", header+"Doom II,DOOM2.WAD,DOOM2.WAD,2,1994-09-30,Hell on Earth,one,Entryway,1,1,false\n")

	_, err := (&CampaignValidator{}).validateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "episode_number")
}
