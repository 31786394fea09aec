// Package i18n provides internationalization support for the production gateway.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.invalid_id":             "A valid id is required",
			"error.missing_association_id": "Product-material association id is required",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.api_key_required":       "API key is required",
			"error.invalid_api_key":        "Invalid API key",
			"error.invalid_token":          "Invalid or expired token",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.conflict":               "Conflict",
			"error.upstream_unavailable":   "Manufacturing service is temporarily unavailable",
			"error.upstream_failure":       "Manufacturing service request failed",
			"error.plan_not_ready":         "Production plan is not ready",
			"error.audit_disabled":         "Audit trail is disabled",
		},
		"pt": {
			"error.invalid_request":        "Requisição inválida",
			"error.invalid_request_body":   "Corpo da requisição inválido",
			"error.invalid_id":             "É necessário um id válido",
			"error.missing_association_id": "O id da associação produto-matéria-prima é obrigatório",
			"error.internal_error":         "Ocorreu um erro inesperado",
			"error.unauthorized":           "Não autorizado",
			"error.api_key_required":       "Chave de API é obrigatória",
			"error.invalid_api_key":        "Chave de API inválida",
			"error.invalid_token":          "Token inválido ou expirado",
			"error.not_found":              "Não encontrado",
			"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
			"error.conflict":               "Conflito",
			"error.upstream_unavailable":   "O serviço de produção está temporariamente indisponível",
			"error.upstream_failure":       "Falha na requisição ao serviço de produção",
			"error.plan_not_ready":         "O plano de produção ainda não está pronto",
			"error.audit_disabled":         "A trilha de auditoria está desativada",
		},
		"nl": {
			"error.invalid_request":        "Ongeldig verzoek",
			"error.invalid_request_body":   "Ongeldige aanvraag body",
			"error.invalid_id":             "Een geldige id is vereist",
			"error.missing_association_id": "Id van de product-grondstofkoppeling is vereist",
			"error.internal_error":         "Er is een onverwachte fout opgetreden",
			"error.unauthorized":           "Niet geautoriseerd",
			"error.api_key_required":       "API-sleutel is vereist",
			"error.invalid_api_key":        "Ongeldige API-sleutel",
			"error.invalid_token":          "Ongeldig of verlopen token",
			"error.not_found":              "Niet gevonden",
			"error.rate_limit_exceeded":    "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":               "Conflict",
			"error.upstream_unavailable":   "De productieservice is tijdelijk niet beschikbaar",
			"error.upstream_failure":       "Verzoek aan de productieservice mislukt",
			"error.plan_not_ready":         "Het productieplan is nog niet gereed",
			"error.audit_disabled":         "Audittrail is uitgeschakeld",
		},
	}
}
