package agent

const greetingPrompt = `You are a friendly SaaS assistant.
Greet the user briefly and ask how you can help.`

const askFieldPrompt = `You are a friendly SaaS sales assistant.
Ask the user politely for their %s.
Ask in one short sentence.`

const pricingAnswerPrompt = `You are a helpful SaaS sales assistant.

Use ONLY the information below to answer the user.
Do NOT add extra details.

Pricing Information:
Basic Plan: %s
Pro Plan: %s

User question: %s`
