// Package assistant answers visitor questions about the portfolio subject
// through a hosted generative model. The bridge never surfaces an error to
// its caller: every failure path resolves to a fixed, user-facing string.
package assistant

import (
	"context"
	"log"
	"strings"
)

// Fixed replies for the three degraded paths. The widget shows these
// verbatim.
const (
	MsgMissingKey      = "I'm sorry, my brain (API Key) is missing! Please configure the API Key."
	MsgTroubleReaching = "I'm having trouble connecting to the server right now. Please try again later."
	MsgCouldNotProcess = "I apologize, I couldn't process that."
)

// systemInstruction is the fixed persona sent with every request. Calls are
// stateless: no conversation history goes to the provider.
const systemInstruction = `You are an AI assistant representing a Junior Business Analyst's portfolio.
The candidate's name is "Truong Thi Minh Tu".
Key details:
- Recent grad in Information Technology from Hue University of Sciences.
- Career Goal: Aspiring Business Analyst aiming to become a Product Manager.
- Experience:
  1. Korean BrSE Intern at FPT Software (Full-stack & Korean language).
  2. Secretary/Assistant VP Education at Hue Toastmasters Club.
  3. Regional Coordinator at VietHope Inc.
- Skills: SQL, Figma, UML, BPMN, Requirement Elicitation.
- Soft Skills: Strong communication, proactive mindset, leadership.

Your goal is to answer questions from recruiters or hiring managers professionally, briefly, and enthusiastically.
If asked about contact info, direct them to the contact section.
Keep answers under 50 words unless asked for detail.`

// Provider is the completion backend. Generate returns the model's text,
// which may legitimately be empty.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Bridge wraps a Provider behind the always-resolves contract. A nil
// provider means the credential is missing.
type Bridge struct {
	provider Provider
}

func NewBridge(p Provider) *Bridge {
	return &Bridge{provider: p}
}

// Ask sends the user's text plus the fixed persona instruction and returns
// the reply, or one of the fixed substitutes. It never returns an error.
func (b *Bridge) Ask(ctx context.Context, userText string) string {
	if b.provider == nil {
		return MsgMissingKey
	}

	reply, err := b.provider.Generate(ctx, systemInstruction, userText)
	if err != nil {
		log.Printf("assistant: provider call failed: %v", err)
		return MsgTroubleReaching
	}
	if strings.TrimSpace(reply) == "" {
		return MsgCouldNotProcess
	}
	return reply
}
