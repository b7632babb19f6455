package campaign

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "game_name,iwad,pwad,complevel,release_date,episode_name,episode_number,mission_name,mission_number,level_number,is_secret\n"

func TestReadRecords(t *testing.T) {
	data := header +
		"DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,Entryway,1,1,false\n" +
		"DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,\"Underhalls, Again\",2,2,true\n"

	records, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		GameName:      "DoomCity",
		IWAD:          "DOOM2.WAD",
		PWAD:          "mywad.wad",
		Complevel:     "2",
		ReleaseDate:   "1995-01-01",
		EpisodeName:   "E1",
		EpisodeNumber: 1,
		MissionName:   "Entryway",
		MissionNumber: 1,
		LevelNumber:   1,
	}, records[0])
	assert.Equal(t, "Underhalls, Again", records[1].MissionName)
	assert.True(t, records[1].IsSecret)
}

func TestReadRecords_ColumnOrderIndependent(t *testing.T) {
	data := "mission_name,level_number,is_secret,game_name,iwad,pwad,complevel,release_date,episode_name,episode_number,mission_number,notes\n" +
		"Hangar,1,false,The Ultimate Doom,DOOM.WAD,DOOM.WAD,3,1995-04-30,Knee-Deep in the Dead,1,1,first map\n"

	records, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Hangar", records[0].MissionName)
	assert.Equal(t, "The Ultimate Doom", records[0].GameName)
	assert.Equal(t, 1, records[0].EpisodeNumber)
}

func TestReadRecords_ByteOrderMark(t *testing.T) {
	data := "\ufeff" + header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,Entryway,1,1,false\n"

	records, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "DoomCity", records[0].GameName)
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantEmpty  bool
		wantLine   int
		wantColumn string
		wantValue  string
	}{
		{name: "empty file", data: "", wantEmpty: true},
		{name: "header only", data: header, wantEmpty: true},
		{
			name:       "missing column",
			data:       "game_name,iwad\nDoomCity,DOOM2.WAD\n",
			wantLine:   1,
			wantColumn: ColPWAD,
		},
		{
			name:       "bad episode number",
			data:       header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,one,Entryway,1,1,false\n",
			wantLine:   2,
			wantColumn: ColEpisodeNumber,
			wantValue:  "one",
		},
		{
			name:       "bad level number",
			data:       header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,Entryway,1,,false\n",
			wantLine:   2,
			wantColumn: ColLevelNumber,
		},
		{
			name:     "short row",
			data:     header + "DoomCity,DOOM2.WAD\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.data))
			require.Error(t, err)

			if tt.wantEmpty {
				assert.ErrorIs(t, err, ErrEmptyInput)
				return
			}

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "expected FormatError, got %T", err)
			assert.Equal(t, tt.wantLine, formatErr.Line)
			assert.Equal(t, tt.wantColumn, formatErr.Column)
			assert.Equal(t, tt.wantValue, formatErr.Value)
		})
	}
}

func TestReadRecords_BadNumberWrapsSyntaxError(t *testing.T) {
	data := header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,Entryway,x,1,false\n"

	_, err := ReadRecords(strings.NewReader(data))
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `column mission_number: invalid value "x"`)
}

func TestReadRecords_RejectsLineBreaks(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantColumn string
		wantValue  string
	}{
		{
			name:       "newline in mission name",
			data:       header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,\"Entry\nway\",1,1,false\n",
			wantColumn: ColMissionName,
			wantValue:  "Entry\nway",
		},
		{
			name:       "newline in pwad",
			data:       header + "DoomCity,DOOM2.WAD,\"my\r\nwad.wad\",2,1995-01-01,E1,1,Entryway,1,1,false\n",
			wantColumn: ColPWAD,
			wantValue:  "my\nwad.wad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.data))
			require.ErrorIs(t, err, ErrLineBreak)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, 2, formatErr.Line)
			assert.Equal(t, tt.wantColumn, formatErr.Column)
			assert.Equal(t, tt.wantValue, formatErr.Value)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doomcity.csv")
	data := header + "DoomCity,DOOM2.WAD,mywad.wad,2,1995-01-01,E1,1,Entryway,1,1,false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DoomCity", c.Name)
	assert.Equal(t, 1, c.MissionCount())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(header), 0644))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "empty.csv")
}
