package engine

import "strings"

// FAQEntry is one row of the assistant's static rule table. The table is
// the whole "AI": answers come from keyword containment, not inference, so
// extending the assistant means adding rows, not code.
type FAQEntry struct {
	Category string
	Question string
	Keywords []string
	Response string
}

// faqTable is evaluated in order; Answer returns the first containment hit.
// Room rows come before topic rows so "how big is the auditorium" answers
// with room facts rather than the generic capacity row.
var faqTable = []FAQEntry{
	{
		Category: "rooms",
		Question: "Tell me about the Auditorium",
		Keywords: []string{"auditorium"},
		Response: "The Auditorium is our largest space with capacity for 200 people. It features a projector, sound system, stage and WiFi. Perfect for presentations and large meetings. Rate: $150/hour.",
	},
	{
		Category: "rooms",
		Question: "Tell me about the Library",
		Keywords: []string{"library"},
		Response: "The Library is a quiet study space for up to 50 people. It has WiFi, whiteboards and study tables. Ideal for study sessions and small meetings. Rate: $75/hour.",
	},
	{
		Category: "rooms",
		Question: "Tell me about the Grounds",
		Keywords: []string{"grounds"},
		Response: "The Grounds is our outdoor space for large events. It includes parking, a catering area and open space. Great for team building and social events. Rate: $200/hour.",
	},
	{
		Category: "booking",
		Question: "How do I book a room?",
		Keywords: []string{"book", "reserve", "reservation", "how to"},
		Response: "To book a room: 1) Select a room, 2) Choose your date and time slot, 3) Fill out the booking form, 4) Submit the request. The system will suggest the best room based on your event details!",
	},
	{
		Category: "booking",
		Question: "Can I cancel my booking?",
		Keywords: []string{"cancel", "refund"},
		Response: "You can cancel bookings up to 24 hours before your scheduled time for a full refund. Cancellations within 24 hours are subject to a 50% cancellation fee.",
	},
	{
		Category: "payment",
		Question: "What are the room rates?",
		Keywords: []string{"price", "cost", "rate", "fee", "money"},
		Response: "Hourly rates: Auditorium $150/hour, Library $75/hour, Grounds $200/hour. All prices include basic amenities. Contact us for special packages and discounts.",
	},
	{
		Category: "payment",
		Question: "What payment methods do you accept?",
		Keywords: []string{"payment", "credit card", "paypal", "pay"},
		Response: "We accept all major credit cards (Visa, MasterCard, American Express), debit cards, and PayPal. Payment is required at the time of booking.",
	},
	{
		Category: "policy",
		Question: "What are the facility policies?",
		Keywords: []string{"policy", "policies", "rules"},
		Response: "Key policies: cancellations must be made 24 hours in advance for a full refund, rooms must be left in the condition they were found, and attendee counts should respect room capacity. No smoking or prohibited activities.",
	},
	{
		Category: "policy",
		Question: "What happens if I'm late?",
		Keywords: []string{"late", "arrive", "punctual"},
		Response: "Please arrive on time for your booking. If you're more than 15 minutes late, your reservation may be cancelled and the slot made available to other users.",
	},
	{
		Category: "hours",
		Question: "What are the opening hours?",
		Keywords: []string{"hours", "time", "when", "open"},
		Response: "Our rooms are available from 9:00 AM to 5:00 PM in 1-hour slots, Monday through Friday. Weekend bookings may be available upon request.",
	},
	{
		Category: "capacity",
		Question: "How many people fit in each room?",
		Keywords: []string{"capacity", "people", "fit"},
		Response: "Room capacities: Auditorium (200 people), Library (50 people), Grounds (300 people). The booking form will warn you if your group size exceeds room capacity.",
	},
	{
		Category: "amenities",
		Question: "What amenities are included?",
		Keywords: []string{"amenities", "features", "equipment", "included"},
		Response: "Auditorium: Projector, Sound System, Stage, Microphone, AC, WiFi | Library: WiFi, Whiteboard, AC, Quiet Zone, Study Tables | Grounds: Outdoor space, Parking, Catering Area, Open Space, Garden.",
	},
	{
		Category: "assistant",
		Question: "How do smart suggestions work?",
		Keywords: []string{"suggest", "recommend", "smart", " ai "},
		Response: "The booking assistant analyzes your event type and attendee count to recommend the best room. Just describe your event (like 'presentation' or 'study session') and enter attendee numbers in the booking form.",
	},
	{
		Category: "support",
		Question: "How do I contact support?",
		Keywords: []string{"contact", "help", "support"},
		Response: "For additional help: Phone: (555) 123-4567 (Mon-Fri, 9 AM - 5 PM) | Email: support@bchs.edu",
	},
	{
		Category: "greeting",
		Question: "Hello",
		Keywords: []string{"hello", "hi ", "hey"},
		Response: "Hello! I'm here to help with your room booking needs. You can ask me about room features, booking policies, pricing, or how the smart booking suggestions work.",
	},
}

// FallbackResponse is returned when nothing in the table matches. It lists
// the supported topics so the user knows what to ask.
const FallbackResponse = "I can help you with room information, the booking process, policies, pricing, and room amenities. Try asking about a specific room, booking policies, or how the room suggestions work!"

// Answer returns the first rule-table response whose keywords appear in the
// query, or the fallback listing supported topics.
func Answer(query string) string {
	lower := strings.ToLower(query)
	for _, entry := range faqTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Response
			}
		}
	}
	return FallbackResponse
}

// AnswerScored is the question-bot variant: instead of first-match it picks
// the entry with the highest keyword-weight score, where longer keywords
// weigh more and a question-text containment adds a flat bonus. Falls back
// the same way when nothing scores.
func AnswerScored(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return FallbackResponse
	}

	bestScore := 0
	bestResponse := FallbackResponse
	for _, entry := range faqTable {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score += len(kw)
			}
		}
		if strings.Contains(strings.ToLower(entry.Question), lower) {
			score += 10
		}
		if score > bestScore {
			bestScore = score
			bestResponse = entry.Response
		}
	}
	return bestResponse
}

// Topics returns the distinct categories in table order, for the quick
// question chips in clients.
func Topics() []string {
	var out []string
	seen := map[string]bool{}
	for _, entry := range faqTable {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	return out
}
