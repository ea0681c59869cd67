package analysis

import "fmt"

func relevancePrompt(topic string) string {
	return fmt.Sprintf(`You are a relevance rater. Judge whether the news headline is related to "%s".
Answer with exactly one of the words 'high', 'medium' or 'low' and nothing else.`, topic)
}

const summaryPrompt = `You are a news digest writer. From the article, state its main impact and its main cause,
each in at most 50 characters and in the language of the article.
Output JSON only, no other text:
{"impact": "...", "cause": "..."}`

const keywordsPrompt = `You extract search keywords. The user describes the news they want to see.
Reply with only the most important keywords, separated by single spaces.
Do not include generic words such as "news" or "information" that would confuse a search engine.`
