package i18n

var catalogs = map[string]map[string]string{
	"en": {
		"field.apiKey.title":                "API Key",
		"field.apiKey.description":          "Secret key used to authenticate requests.",
		"field.baseURL.title":               "Base URL",
		"field.baseURL.description":         "Override the default API endpoint.",
		"field.organization.title":          "Organization",
		"field.organization.description":    "Organization ID sent with every request.",
		"field.project.title":               "Project",
		"field.project.description":         "Project ID sent with every request.",
		"field.compatibility.title":         "Compatibility",
		"field.compatibility.description":   "Use strict mode for the official API, compatible mode for third-party endpoints.",
		"field.resourceName.title":          "Resource Name",
		"field.resourceName.description":    "Name of the Azure OpenAI resource.",
		"field.apiVersion.title":            "API Version",
		"field.apiVersion.description":      "API version sent with every request.",
		"field.region.title":                "Region",
		"field.region.description":          "AWS region hosting the models.",
		"field.accessKeyId.title":           "Access Key ID",
		"field.accessKeyId.description":     "AWS access key ID.",
		"field.secretAccessKey.title":       "Secret Access Key",
		"field.secretAccessKey.description": "AWS secret access key.",
		"field.sessionToken.title":          "Session Token",
		"field.sessionToken.description":    "Temporary session token, if any.",
		"violation.missing":                 "{0} is a required field",
		"violation.type":                    "{0} must be a {1}",
		"violation.format.url":              "{0} must be a valid URL",
		"violation.format.enum":             "{0} must be one of [{1}]",
		"violation.unknown":                 "{0} is not a recognised setting",
	},
	"de": {
		"field.apiKey.title":                "API-Schlüssel",
		"field.apiKey.description":          "Geheimer Schlüssel zur Authentifizierung der Anfragen.",
		"field.baseURL.title":               "Basis-URL",
		"field.baseURL.description":         "Überschreibt den Standard-Endpunkt der API.",
		"field.organization.title":          "Organisation",
		"field.organization.description":    "Organisations-ID, die mit jeder Anfrage gesendet wird.",
		"field.project.title":               "Projekt",
		"field.project.description":         "Projekt-ID, die mit jeder Anfrage gesendet wird.",
		"field.compatibility.title":         "Kompatibilität",
		"field.compatibility.description":   "Strikter Modus für die offizielle API, kompatibler Modus für Drittanbieter.",
		"field.resourceName.title":          "Ressourcenname",
		"field.resourceName.description":    "Name der Azure-OpenAI-Ressource.",
		"field.apiVersion.title":            "API-Version",
		"field.apiVersion.description":      "API-Version, die mit jeder Anfrage gesendet wird.",
		"field.region.title":                "Region",
		"field.region.description":          "AWS-Region, in der die Modelle laufen.",
		"field.accessKeyId.title":           "Zugriffsschlüssel-ID",
		"field.secretAccessKey.title":       "Geheimer Zugriffsschlüssel",
		"field.sessionToken.title":          "Sitzungstoken",
		"violation.missing":                 "{0} ist ein Pflichtfeld",
		"violation.type":                    "{0} muss vom Typ {1} sein",
		"violation.format.url":              "{0} muss eine gültige URL sein",
		"violation.format.enum":             "{0} muss einer der Werte [{1}] sein",
		"violation.unknown":                 "{0} ist keine bekannte Einstellung",
	},
	"zh": {
		"field.apiKey.title":              "API 密钥",
		"field.apiKey.description":        "用于请求认证的密钥。",
		"field.baseURL.title":             "接口地址",
		"field.baseURL.description":       "覆盖默认的 API 地址。",
		"field.organization.title":        "组织",
		"field.project.title":             "项目",
		"field.compatibility.title":       "兼容模式",
		"field.resourceName.title":        "资源名称",
		"field.apiVersion.title":          "API 版本",
		"field.region.title":              "区域",
		"field.accessKeyId.title":         "访问密钥 ID",
		"field.secretAccessKey.title":     "秘密访问密钥",
		"field.sessionToken.title":        "会话令牌",
		"violation.missing":               "{0}为必填字段",
		"violation.type":                  "{0}必须是{1}类型",
		"violation.format.url":            "{0}必须是有效的URL",
		"violation.format.enum":           "{0}必须是[{1}]中的一个",
		"violation.unknown":               "{0}不是可识别的设置",
	},
}
