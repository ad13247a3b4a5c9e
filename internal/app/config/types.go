package config

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
	}
	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		FrontendBaseURL string
		MaxRequests     int
		ShutdownTimeout int
	}
	JWT struct {
		Secret string
	}
	PaymentGateway struct {
		SecretKey     string
		WebhookSecret string
		Currency      string
	}
)
