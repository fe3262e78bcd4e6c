package cli

import (
	"github.com/spf13/viper"

	"framelink/internal/app"
	"framelink/internal/types"
)

// loadBuildSettings reads the Xcode build environment once. The variables
// are unprefixed, so they are bound on a separate viper instance.
func loadBuildSettings() (types.BuildSettings, error) {
	env := viper.New()
	keys := map[string]string{}
	for _, setting := range types.BuildSettingKeys {
		_ = env.BindEnv(setting.Key, setting.Env)
		keys[setting.Env] = setting.Key
	}
	return app.LoadBuildSettings(func(name string) (string, bool) {
		key, ok := keys[name]
		if !ok || !env.IsSet(key) {
			return "", false
		}
		return env.GetString(key), true
	})
}
