package jukebox

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iliyamo/jukebox/internal/model"
)

var defaultAccounts = []struct {
	username, password string
	admin              bool
}{
	{"Chris", "1", false},
	{"Devon", "22", false},
	{"River", "333", false},
	{"Ryan", "4444", false},
	{ProtectedUsername, "7777777", true},
}

var defaultSongs = []struct{ title, time, artist, file string }{
	{"Pokemon Capture", "0:05", "Pikachu", "Capture.mp3"},
	{"Danse Macabre", "0:34", "Kevin MacLeod", "DanseMacabreViolinHook.mp3"},
	{"Determined Tumbao", "0:20", "FreePlay Music", "DeterminedTumbao.mp3"},
	{"Loping Sting", "0:05", "Kevin MacLeod", "LopingSting.mp3"},
	{"Swing Cheese", "0:15", "FreePlay Music", "SwingCheese.mp3"},
	{"The Curtain Rises", "0:28", "Kevin MacLeod", "TheCurtainRises.mp3"},
	{"Untameable Fire", "4:42", "Pierre Langer", "UntameableFire.mp3"},
}

// SeedAccounts registers the stock accounts, including the protected
// administrator.
func SeedAccounts(l *Ledger) error {
	for _, a := range defaultAccounts {
		if _, err := l.AddOrUpdate(a.username, a.password, a.admin); err != nil {
			return fmt.Errorf("seed account %s: %w", a.username, err)
		}
	}
	return nil
}

// DefaultSongs returns the stock catalog.
func DefaultSongs() []model.Song {
	out := make([]model.Song, 0, len(defaultSongs))
	for _, d := range defaultSongs {
		s, err := model.NewSong(d.title, d.time, d.artist, d.file)
		if err != nil {
			panic(err) // static data
		}
		out = append(out, s)
	}
	return out
}

// SeedCatalog adds songs to c in order.
func SeedCatalog(c *Catalog, songs []model.Song) error {
	for _, s := range songs {
		if err := c.Add(s); err != nil {
			return fmt.Errorf("seed song %q: %w", s.Title, err)
		}
	}
	return nil
}

// catalogFile is the YAML layout accepted by LoadCatalogFile:
//
//	songs:
//	  - title: Swing Cheese
//	    time: "0:15"
//	    artist: FreePlay Music
//	    file: SwingCheese.mp3
type catalogFile struct {
	Songs []model.Song `yaml:"songs"`
}

// LoadCatalogFile reads a YAML catalog and derives each song's duration.
func LoadCatalogFile(path string) ([]model.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()

	var cf catalogFile
	if err := yaml.NewDecoder(f).Decode(&cf); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}
	if len(cf.Songs) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := make([]model.Song, 0, len(cf.Songs))
	for _, s := range cf.Songs {
		song, err := model.NewSong(s.Title, s.Time, s.Artist, s.File)
		if err != nil {
			return nil, err
		}
		out = append(out, song)
	}
	return out, nil
}
