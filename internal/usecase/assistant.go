package usecase

import (
	"strings"
)

const (
	assistantGreeting = "Hi there! I'm AromaAI, your fragrance assistant. Need help finding your perfect scent?"
	assistantFallback = "That's a great question! I'd recommend exploring our collection or taking our scent quiz to find fragrances that match your preferences. What type of scent are you drawn to?"
)

// KeywordResponse pairs a trigger keyword with a canned reply
type KeywordResponse struct {
	Keyword  string
	Response string
}

// defaultResponses is checked top to bottom; the first hit wins
var defaultResponses = []KeywordResponse{
	{"floral", "Our floral fragrances pair rose, jasmine and peony. Try Rose Garden for a romantic daytime scent or Midnight Bloom for the evening."},
	{"citrus", "Citrus Dawn opens with bergamot and lemon. It is bright, fresh and perfect for daytime wear."},
	{"woody", "Woody scents like Cedar Mist build on cedarwood, vetiver and sandalwood for a grounded, elegant finish."},
	{"fresh", "For something fresh, Ocean Breeze and Citrus Dawn are light and clean. Both are lovely for warm days."},
	{"evening", "For the evening, Velvet Noir and Amber Nights are rich and long-lasting with amber, oud and vanilla."},
	{"night", "For a night out, Velvet Noir and Amber Nights are rich and long-lasting with amber, oud and vanilla."},
	{"gift", "Gift sets are available on most fragrances. Add a note at checkout and we'll wrap it for you."},
	{"price", "Our fragrances range from about $65 to $120. Ask me for options under $80 if you're shopping on a budget."},
	{"budget", "Looking for value? Lavender Dreams, Ocean Breeze and Citrus Dawn are all under $80."},
	{"shipping", "Standard shipping takes 3-5 business days and is free on orders over $100."},
	{"delivery", "You can follow your order on the delivery page with the tracking number from your confirmation email."},
	{"track", "You can follow your order on the delivery page with the tracking number from your confirmation email."},
	{"return", "Unopened bottles can be returned within 30 days for a full refund."},
	{"long-lasting", "Eau de parfum concentrations like Velvet Noir and Spice Route last 8 hours or more on skin."},
	{"recommend", "Tell me the notes you love, such as vanilla, rose or citrus, and whether it's for day or evening, and I'll narrow it down."},
	{"hello", "Hello! Ask me about scent families, notes, prices or your delivery."},
}

// Assistant answers chat messages from a fixed keyword table
type Assistant struct {
	responses []KeywordResponse
}

// NewAssistant creates an assistant. A nil table uses the built-in responses.
func NewAssistant(responses []KeywordResponse) *Assistant {
	if responses == nil {
		responses = defaultResponses
	}
	return &Assistant{responses: responses}
}

// Greeting returns the opening line of a conversation
func (a *Assistant) Greeting() string {
	return assistantGreeting
}

// Reply returns the response for the first keyword found in message
func (a *Assistant) Reply(message string) string {
	lowerMessage := strings.ToLower(message)
	for _, r := range a.responses {
		if strings.Contains(lowerMessage, strings.ToLower(r.Keyword)) {
			return r.Response
		}
	}
	return assistantFallback
}
