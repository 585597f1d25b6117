package cmd

type Config struct {
	HTTPPort        string
	OrderServiceURL string
	CMSURL          string
	RedisAddr       string
	RedisPassword   string
}
