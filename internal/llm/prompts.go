package llm

import (
	"fmt"
	"strings"
)

// ArticleCount is the number of articles every search asks for.
const ArticleCount = 5

const defaultSectionInstructions = "Generate standard academic content for this section."

const findArticlesTemplate = `You are a research assistant API. A user is searching for academic articles on the topic: "%s".
Your task is to find and return a list of %d relevant, real academic articles.
For each article, provide the following details in a JSON object: id, title, authors (as a string), journal, year, a short abstract in Persian, citations (a realistic number), and a placeholder pdf_url ('#').
The final output MUST be a valid JSON array of these objects. Do not include any other text, explanation, or markdown formatting like ` + "```json" + `. Just the raw array.

Example for one article:
{
    "id": 1,
    "title": "Attention Is All You Need",
    "authors": "Ashish Vaswani, et al.",
    "journal": "NIPS",
    "year": 2017,
    "abstract": "این مقاله یک معماری شبکه جدید به نام ترنسفورمر را معرفی می‌کند که تنها بر اساس مکانیزم‌های توجه است و کاملاً از تکرار و کانولوشن صرف نظر می‌کند.",
    "citations": 85000,
    "pdf_url": "#"
}`

const proposalTemplate = `You are a professional academic writer. Your task is to write a detailed research proposal in Persian.
The main topic is: "%s".
The proposal must strictly follow this structure and instructions:
%s

Generate the content for each section. The output should be well-structured, academic, and sound like it was written by a human researcher. Use Markdown for formatting (e.g., # for main title, ## for section titles, lists, bold text). Start with the main title of the proposal.`

const analysisTemplate = `You are a research assistant reviewing literature for the research question: "%s".
Analyze the following abstract of the article "%s" and explain in Persian, in at most five sentences, how relevant it is to the research question, its main finding, and one limitation.

Abstract:
%s`

func findArticlesPrompt(query string) string {
	return fmt.Sprintf(findArticlesTemplate, query, ArticleCount)
}

func proposalPrompt(topic string, sections []ProposalSection) string {
	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		instructions := s.Instructions
		if strings.TrimSpace(instructions) == "" {
			instructions = defaultSectionInstructions
		}
		lines = append(lines, fmt.Sprintf("- Section \"%s\": %s", s.Title, instructions))
	}
	return fmt.Sprintf(proposalTemplate, topic, strings.Join(lines, "\n"))
}

func analysisPrompt(article Article, query string) string {
	return fmt.Sprintf(analysisTemplate, query, article.Title, article.Abstract)
}
