package config

// YAMLConfig mirrors config.yaml. Pointer fields distinguish "unset" from
// zero values so defaults survive partial files.
type YAMLConfig struct {
	QR struct {
		Image struct {
			Size        *int   `yaml:"size"`
			Recovery    string `yaml:"recovery"`
			JPEGQuality *int   `yaml:"jpeg_quality"`
		} `yaml:"image"`

		Directories struct {
			Create string `yaml:"create"`
		} `yaml:"directories"`

		Progress struct {
			Enabled *bool `yaml:"enabled"`
			Steps   *int  `yaml:"steps"`
		} `yaml:"progress"`

		Logging struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"qr"`
}
