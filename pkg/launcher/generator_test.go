package launcher

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/doom-launchers/pkg/engine"
	"github.com/jwebster45206/doom-launchers/pkg/paths"
)

const twoEpisodeCSV = "game_name,iwad,pwad,complevel,release_date,episode_name,episode_number,mission_name,mission_number,level_number,is_secret\n" +
	"Test Doom,DOOM.WAD,TEST.WAD,3,1999-01-01,First,1,Alpha,1,1,false\n" +
	"Test Doom,DOOM.WAD,TEST.WAD,3,1999-01-01,First,1,Bravo,2,2,true\n" +
	"Test Doom,DOOM.WAD,TEST.WAD,3,1999-01-01,Second,2,Charlie,1,10,false\n"

func listFiles(t *testing.T, root string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = data
		return nil
	}))
	return files
}

func newTestGenerator(t *testing.T, home paths.Home, progress io.Writer, ports ...string) *Generator {
	t.Helper()
	profiles := make([]*engine.Profile, 0, len(ports))
	for _, port := range ports {
		profiles = append(profiles, mustProfile(t, home, port, "1.0"))
	}
	return NewGenerator(home, profiles, NewWriter(progress, testLogger()), testLogger())
}

func TestGenerator_Generate(t *testing.T) {
	home := testHome(t)
	c := loadCampaign(t, twoEpisodeCSV)
	var progress bytes.Buffer
	g := newTestGenerator(t, home, &progress, "prboom", "dsda")

	require.NoError(t, g.Generate(context.Background(), c))

	files := listFiles(t, filepath.Join(home.Unix, "launchers"))
	base := "1999-01-01 -- Test Doom/"
	for _, name := range []string{
		"prboom/music/start.bat",
		"prboom/nomonsters/MAP02 -- E01M02 -- Bravo.bat",
		"prboom/nomusic/MAP10 -- E02M01 -- Charlie.bat",
		"dsda/record/d2all.bat",
		"dsda/record/MAP01 -- E01M01 -- Alpha.bat",
	} {
		assert.Contains(t, files, base+name)
	}
	assert.NotContains(t, files, base+"prboom/record/start.bat")
	assert.NotContains(t, files, base+"dsda/record/start.bat")
	// prboom: 3 start + 9 maps; dsda: 3 start + 1 d2all + 9 maps + 3 record.
	assert.Len(t, files, 28)

	charlie := string(files[base+"prboom/music/MAP10 -- E02M01 -- Charlie.bat"])
	assert.Contains(t, charlie, "-warp 2 1\r\n")

	for _, dir := range []string{"external", "highlights", "D2All"} {
		assert.DirExists(t, filepath.Join(home.Unix, "demos", "1999-01-01 -- Test Doom", dir))
	}
	assert.Equal(t, 28, strings.Count(progress.String(), "Writing "))
}

func TestGenerator_Idempotent(t *testing.T) {
	home := testHome(t)
	c := loadCampaign(t, twoEpisodeCSV)
	g := newTestGenerator(t, home, io.Discard, "crispy_doom", "gzdoom", "dsda")

	require.NoError(t, g.Generate(context.Background(), c))
	first := listFiles(t, home.Unix)
	require.NoError(t, g.Generate(context.Background(), c))
	second := listFiles(t, home.Unix)

	assert.Equal(t, first, second)
}

func TestGenerator_DemoLaunchers(t *testing.T) {
	home := testHome(t)
	c := loadCampaign(t, twoEpisodeCSV)

	demo := filepath.Join(home.Unix, "demos", "1999-01-01 -- Test Doom", "MAP02", "MAP02-001.lmp")
	require.NoError(t, os.MkdirAll(filepath.Dir(demo), 0o755))
	require.NoError(t, os.WriteFile(demo, []byte("demo"), 0o644))

	t.Run("played with dsda", func(t *testing.T) {
		g := newTestGenerator(t, home, io.Discard, "prboom", "dsda")
		require.NoError(t, g.Generate(context.Background(), c))

		s, err := ReadScript(filepath.Join(home.Unix, "demo-launchers", "1999-01-01 -- Test Doom", "MAP02", "MAP02-001.bat"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(s.Lines[4], "dsda-doom.exe "))
		assert.True(t, strings.HasSuffix(s.Lines[4], `-playdemo "C:\doom\demos\1999-01-01 -- Test Doom\MAP02\MAP02-001.lmp"`))
	})

	t.Run("skipped without dsda", func(t *testing.T) {
		other := paths.Home{Windows: home.Windows, Unix: t.TempDir()}
		require.NoError(t, os.MkdirAll(filepath.Join(other.Unix, "demos", "1999-01-01 -- Test Doom", "MAP02"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(other.Unix, "demos", "1999-01-01 -- Test Doom", "MAP02", "x.lmp"), []byte("demo"), 0o644))

		g := newTestGenerator(t, other, io.Discard, "prboom")
		require.NoError(t, g.Generate(context.Background(), c))
		assert.NoDirExists(t, filepath.Join(other.Unix, "demo-launchers"))
	})
}

func TestGenerator_Cancelled(t *testing.T) {
	home := testHome(t)
	c := loadCampaign(t, twoEpisodeCSV)
	g := newTestGenerator(t, home, io.Discard, "prboom")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Generate(ctx, c), context.Canceled)
	assert.NoDirExists(t, filepath.Join(home.Unix, "launchers"))
}

func TestFindDemos(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b/2.lmp", "a/1.LMP", "a/notes.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	demos, err := FindDemos(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a", "1.LMP"), filepath.Join(dir, "b", "2.lmp")}, demos)
}
