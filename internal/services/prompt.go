package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEvaluationPrompt creates the prompt for resume vs job description
// evaluation. Inputs are embedded verbatim, no escaping.
func (pb *PromptBuilder) BuildEvaluationPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are a professional HR recruiter and resume screening expert specializing in Software Engineering roles.
Evaluate the provided resume and compare it to the job description for a Software Engineer position.
Based on your analysis, provide a structured evaluation according to the specified format.

Please analyze the following resume and job description, then respond using JSON format.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Provide your evaluation in the following JSON format:
{
    "overall_match_score": (a number from 0 to 10),
    "key_skills_matched": [array of skills from resume that match the job description],
    "missing_weak_areas": [array of key skills or qualifications not found or weak in the resume],
    "experience_summary": "summary of the candidate's most relevant experiences to the role",
    "recommendation": "Strong Fit / Moderate Fit / Weak Fit",
    "reasoning": "1-2 sentences explaining why the recommendation was given"
}

Be honest, objective, and precise in your evaluation.

Make sure to format your response as a valid JSON object.`,
		jobDescription, resumeText)
}

// BuildSentimentPrompt creates the prompt for employee feedback analysis.
func (pb *PromptBuilder) BuildSentimentPrompt(feedbackText string) string {
	return fmt.Sprintf(`You are an expert HR analyst specializing in employee sentiment analysis and retention strategies.
Analyze the following employee feedback (which could be from a survey, exit interview, or other feedback form).
Based on your analysis, provide a structured evaluation of the employee's sentiment and attrition risk.

EMPLOYEE FEEDBACK:
%s

Provide your analysis in the following JSON format:
{
    "sentiment_score": (a number from 1 to 10, where 1 is extremely negative and 10 is extremely positive),
    "attrition_risk": "High / Medium / Low",
    "key_concerns": [array of main issues or concerns identified in the feedback],
    "positive_aspects": [array of positive aspects mentioned in the feedback],
    "retention_recommendations": [array of 3-5 specific recommendations to improve engagement or reduce attrition risk],
    "summary": "A brief 2-3 sentence summary of the overall sentiment and main takeaways"
}

Be objective, data-driven, and precise in your analysis.
Make sure to format your response as a valid JSON object.`,
		feedbackText)
}
