package environment

import "os"

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_SECRET_KEY")
}

func GetGeminiKey() string {
	return os.Getenv("GEMINI_SECRET_KEY")
}

func GetGoogleMapsKey() string {
	return os.Getenv("GOOGLE_MAPS_API_KEY")
}

func GetDatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}
