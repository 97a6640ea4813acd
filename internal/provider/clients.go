package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

// OpenAIClient serves OpenAI and every OpenAI compatible backend.
type OpenAIClient struct {
	SDK           openai.Client
	ID            string
	BaseURL       string
	Compatibility string
}

func (c *OpenAIClient) Provider() string { return c.ID }

// Strict reports whether the client targets the official API semantics.
func (c *OpenAIClient) Strict() bool { return c.Compatibility == "strict" }

type AzureClient struct {
	SDK        openai.Client
	Endpoint   string
	APIVersion string
}

func (c *AzureClient) Provider() string { return "azure" }

type AnthropicClient struct {
	SDK     anthropic.Client
	BaseURL string
}

func (c *AnthropicClient) Provider() string { return "anthropic" }

type GoogleClient struct {
	SDK     *genai.Client
	BaseURL string
}

func (c *GoogleClient) Provider() string { return "google" }

type BedrockClient struct {
	SDK    *bedrockruntime.Client
	Region string
}

func (c *BedrockClient) Provider() string { return "bedrock" }

// openAICompatible builds a recipe for endpoints speaking the OpenAI wire format.
// keyless backends get a placeholder key since the SDK always sends one.
func openAICompatible(id string, keyless bool) Recipe {
	return func(v *settings.Validated) (Client, error) {
		baseURL := v.String("baseURL")
		opts := []option.RequestOption{option.WithBaseURL(baseURL)}

		key := v.String("apiKey")
		if key == "" && keyless {
			key = id
		}
		opts = append(opts, option.WithAPIKey(key))

		if org := v.String("organization"); org != "" {
			opts = append(opts, option.WithOrganization(org))
		}
		if project := v.String("project"); project != "" {
			opts = append(opts, option.WithProject(project))
		}

		return &OpenAIClient{
			SDK:           openai.NewClient(opts...),
			ID:            id,
			BaseURL:       baseURL,
			Compatibility: v.String("compatibility"),
		}, nil
	}
}

func buildAzure(v *settings.Validated) (Client, error) {
	endpoint := v.String("baseURL")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.openai.azure.com", v.String("resourceName"))
	}
	endpoint = strings.TrimRight(endpoint, "/")
	version := v.String("apiVersion")

	sdk := openai.NewClient(
		azure.WithEndpoint(endpoint, version),
		azure.WithAPIKey(v.String("apiKey")),
	)
	return &AzureClient{SDK: sdk, Endpoint: endpoint, APIVersion: version}, nil
}

func buildAnthropic(v *settings.Validated) (Client, error) {
	baseURL := v.String("baseURL")
	sdk := anthropic.NewClient(
		anthropicoption.WithAPIKey(v.String("apiKey")),
		anthropicoption.WithBaseURL(baseURL),
	)
	return &AnthropicClient{SDK: sdk, BaseURL: baseURL}, nil
}

func buildGoogle(v *settings.Validated) (Client, error) {
	baseURL := v.String("baseURL")
	// With an API key and the Gemini backend the SDK resolves no credentials.
	sdk, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      v.String("apiKey"),
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GoogleClient{SDK: sdk, BaseURL: baseURL}, nil
}

func buildBedrock(v *settings.Validated) (Client, error) {
	region := v.String("region")
	creds := credentials.NewStaticCredentialsProvider(
		v.String("accessKeyId"),
		v.String("secretAccessKey"),
		v.String("sessionToken"),
	)
	sdk := bedrockruntime.New(bedrockruntime.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(creds),
	})
	return &BedrockClient{SDK: sdk, Region: region}, nil
}
