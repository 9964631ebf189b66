package bench

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Config はベンチマークの設定。
type Config struct {
	Keys   int
	Min    int
	Max    int
	Seed   int64
	Rounds int
	// Sorted が true の場合はキーを昇順に挿入し、木を一直線にする。
	Sorted bool
}

func DefaultConfig() Config {
	return Config{
		Keys:   1000,
		Min:    -1000000,
		Max:    1000000,
		Rounds: 1,
	}
}

// LoadConfig は ini ファイルの [bench] セクションを読み込み、base に上書きして返す。
// ファイルが存在しない場合はエラーを返す。
func LoadConfig(path string, base Config) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return base, errors.Wrapf(err, "bench config %s", path)
	}
	file, err := ini.Load(path)
	if err != nil {
		return base, errors.Wrapf(err, "parse bench config %s", path)
	}

	section := file.Section("bench")
	cfg := base
	cfg.Keys = section.Key("keys").MustInt(base.Keys)
	cfg.Min = section.Key("min").MustInt(base.Min)
	cfg.Max = section.Key("max").MustInt(base.Max)
	cfg.Seed = section.Key("seed").MustInt64(base.Seed)
	cfg.Rounds = section.Key("rounds").MustInt(base.Rounds)
	cfg.Sorted = section.Key("sorted").MustBool(base.Sorted)
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Keys <= 0:
		return errors.Errorf("keys must be positive, got %d", c.Keys)
	case c.Rounds <= 0:
		return errors.Errorf("rounds must be positive, got %d", c.Rounds)
	case c.Min > c.Max:
		return errors.Errorf("min %d is greater than max %d", c.Min, c.Max)
	case int64(c.Max)-int64(c.Min)+1 < int64(c.Keys):
		return errors.Errorf("range [%d, %d] cannot hold %d unique keys", c.Min, c.Max, c.Keys)
	}
	return nil
}
