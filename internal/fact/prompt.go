package fact

import "google.golang.org/genai"

const factPrompt = `Generate a single fun fact about dogs.
Keep it to one or two sentences, suitable for all ages.
Return the fact in the following JSON schema: {"fact": string}.`

// factSchema constrains the model output to {"fact": "..."}.
var factSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"fact": {
			Type:        genai.TypeString,
			Description: "A fun fact about dogs.",
		},
	},
	Required: []string{"fact"},
}
