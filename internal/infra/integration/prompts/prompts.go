// Package prompts concentra os prompts de geração e classificação, mais o
// parsing do formato de saída. Os dois provedores de LLM (Groq e Anthropic)
// compartilham exatamente o mesmo material.
package prompts

import (
	"fmt"
	"strings"
)

const bodySeparator = "---BODY---"

const ComposeSystem = `You are Kunal from Devark Studios (https://devark.studio), a web design agency that builds high-converting websites for brands.
You have worked with Shark Tank brands like Kunafa Mafias.`

const ClassifySystem = `You classify replies to cold emails. Respond with ONLY the single word category. Nothing else.`

// BuildComposePrompt monta o pedido de cold email personalizado.
func BuildComposePrompt(businessName, niche, city, snippet string) string {
	return fmt.Sprintf(`Write a short, professional, personalized cold email to a local business that does not have a website yet (or needs an upgrade).
Offer to build them a professional website that establishes credibility and drives customers.

Business details:
- Name: %s
- Type/Niche: %s
- City: %s
- About them (from search): %s

Rules:
- Keep it under 150 words
- Tone: Professional, confident, but helpful
- Mention: "We build websites for brands" and reference "Shark Tank brands like Kunafa Mafias" to establish authority
- Mention their specific business name to show research
- Value Prop: "We can build a premium website that makes %s look professional."
- Call to Action: "Reply to this email if you're interested in connecting further."
- Do NOT use bullet points or numbered lists
- Sign off as: Kunal, Devark Studios (https://devark.studio)

Output ONLY two things, separated by a line that says exactly "%s":
First line: the subject line
Then %s
Then: the email body

Do not add any extra commentary.`, businessName, niche, city, snippet, businessName, bodySeparator, bodySeparator)
}

// BuildClassifyPrompt monta o pedido de classificação de resposta.
func BuildClassifyPrompt(replyText, businessName string) string {
	return fmt.Sprintf(`A freelancer sent a cold email to a business called "%s".
The business replied with this message:

---
%s
---

Classify this reply into EXACTLY one of these three categories:
- interested        (they want to talk, ask for details, or say yes)
- not_interested    (they decline, say no, or ignore the offer)
- needs_followup    (ambiguous, they asked a question, or need more info)

Respond with ONLY the single word category. Nothing else.`, businessName, replyText)
}

// ParseComposed separa assunto e corpo da saída do modelo.
// Sem o separador, a primeira linha vira o assunto e o resto o corpo.
func ParseComposed(raw string) (subject, body string) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, bodySeparator) {
		parts := strings.SplitN(raw, bodySeparator, 2)
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	lines := strings.SplitN(raw, "\n", 2)
	subject = strings.TrimSpace(lines[0])
	if len(lines) > 1 {
		body = strings.TrimSpace(lines[1])
	} else {
		body = raw
	}
	return subject, body
}
