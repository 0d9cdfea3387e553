package agent

import (
	"fmt"
	"strings"
)

// TemplateVersion identifies the wording of the stage templates below.
// Bump it whenever a template changes so saved reports can be traced back.
const TemplateVersion = "v1"

const researchTemplate = `You are a research agent. Your job is to gather comprehensive information about: %s

Provide detailed factual information, key concepts, and important aspects of this topic.
Focus on accuracy and comprehensiveness.

Research findings:
`

const analysisTemplate = `You are an analysis agent. Analyze the following research data about "%s":

Research Data:
%s

Your task:
1. Identify key themes and patterns
2. Extract the most important insights
3. Highlight any contradictions or gaps
4. Provide critical analysis

Analysis:
`

const summaryHeader = `You are a summary agent. Create a comprehensive summary report about "%s".

`

const summaryResearchBlock = `Research Data:
%s

`

const summaryAnalysisBlock = `Analysis:
%s

`

const summaryInstructions = `Create a well-structured summary that includes:
1. Executive Summary
2. Key Findings
3. Main Insights
4. Conclusions
5. Recommendations (if applicable)

Final Report:
`

// ResearchPrompt formats the gatherer template for topic.
func ResearchPrompt(topic string) string {
	return fmt.Sprintf(researchTemplate, topic)
}

// AnalysisPrompt formats the analyzer template with the research text.
func AnalysisPrompt(topic, research string) string {
	return fmt.Sprintf(analysisTemplate, topic, research)
}

// SummaryPrompt formats the summarizer template. The research block is
// omitted when research is empty.
func SummaryPrompt(topic, research, analysis string) string {
	var b strings.Builder
	fmt.Fprintf(&b, summaryHeader, topic)
	if research != "" {
		fmt.Fprintf(&b, summaryResearchBlock, research)
	}
	fmt.Fprintf(&b, summaryAnalysisBlock, analysis)
	b.WriteString(summaryInstructions)
	return b.String()
}
