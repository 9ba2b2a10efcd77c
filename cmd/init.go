package cmd

import "github.com/spf13/viper"

// init binds the CEC_SSH environment prefix so CEC_SSH_CONFIG can supply the
// config path when the --config flag is not given.
func init() {
	viper.SetEnvPrefix("CEC_SSH")
	viper.AutomaticEnv()
}
