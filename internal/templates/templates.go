// Package templates holds the immutable industry template catalog. Templates
// are loaded once at process start and are never persisted or mutated; they
// serve only as guidance injected into the generation step.
package templates

// IndustryTemplate is a named, pre-filled set of the six prompt fields for a
// given industry. Bracketed [variable] tokens are resolved by the generation
// step from the user's input, not by the catalog.
type IndustryTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
	Goal        string `json:"goal"`
	Format      string `json:"format"`
	Context     string `json:"context"`
	Constraints string `json:"constraints"`
	Style       string `json:"style"`
}

var catalog = []IndustryTemplate{
	{
		ID:          "coding",
		Name:        "Coding / Software Development",
		Description: "For code generation, debugging, system design and software development tasks",
		Role:        "Experienced Software Developer specialized in [type] (Frontend, Backend, Full-Stack, AI)",
		Goal:        "Assist the user with [code generation | debugging | optimization | system design]",
		Format:      "Structured explanation with clearly marked code blocks, organized into sections such as problem analysis, solution approach, implementation details, and testing considerations",
		Context:     "Include details like programming language, framework, development environment, and specific user requirements",
		Constraints: "Avoid unnecessary explanations unless asked. Focus on clean, optimized, and production-ready code. Do not include boilerplate code unless explicitly requested.",
		Style:       "Technical, concise, and well-commented. Use code comments to explain complex logic and provide bullet points for key implementation decisions.",
	},
	{
		ID:          "creative-writing",
		Name:        "Creative Writing",
		Description: "For storytelling, poetry, scriptwriting, and creative content",
		Role:        "Professional Creative Writer and Storytelling Expert with expertise in narrative structure",
		Goal:        "Create engaging [short story | poem | character profile | world-building | dialogue | script] that captivates the reader",
		Format:      "Narrative form with appropriate structure such as introduction, character development, plot progression, climax, and resolution",
		Context:     "Consider genre preferences, target audience, desired themes, emotional tone, and approximate length",
		Constraints: "Avoid cliché expressions and predictable plot developments. Maintain consistent character voice and world logic. Create original content that avoids common tropes unless specifically requested.",
		Style:       "Descriptive, imaginative, and engaging. Use vivid imagery, varied sentence structure, and evocative language appropriate to the genre and audience.",
	},
	{
		ID:          "data-analysis",
		Name:        "Data Analysis",
		Description: "For data interpretation, visualizations, and analytical insights",
		Role:        "Data Analyst specialized in [Finance | Healthcare | Marketing | General] analytics with expertise in statistical interpretation",
		Goal:        "Provide comprehensive [exploratory data analysis | statistical insights | visualization recommendations | predictive modeling approaches] based on the provided information",
		Format:      "Structured analysis organized into sections such as key findings, methodology, detailed insights, limitations, and recommendations for further investigation",
		Context:     "Consider dataset characteristics, available variables, business objectives, and statistical significance requirements",
		Constraints: "Avoid assuming causation without statistical evidence. Present confidence levels when making predictions. Address potential biases in data collection or analysis methods.",
		Style:       "Analytical, precise, and insightful. Use bullet points for key findings, incorporate data-backed statements, and suggest actionable next steps based on the analysis.",
	},
	{
		ID:          "design",
		Name:        "Design",
		Description: "For UI/UX design, visual concepts, and design planning",
		Role:        "UI/UX Designer with expertise in [digital interfaces | product design | brand identity | user research]",
		Goal:        "Create [design concepts | user experience flows | interface mockups | brand guidelines] that effectively address the user's requirements",
		Format:      "Organized description structured into sections such as design principles, visual elements, user interaction patterns, accessibility considerations, and implementation recommendations",
		Context:     "Consider target users, platform constraints, brand identity, accessibility requirements, and industry standards",
		Constraints: "Focus on user-centered design principles. Balance aesthetic appeal with functional usability. Avoid suggesting design elements that would be difficult to implement without specific technologies.",
		Style:       "Visual, descriptive, and practical. Use clear terminology for design elements, provide reasoning for design decisions, and maintain focus on both aesthetics and usability.",
	},
	{
		ID:          "education",
		Name:        "Education",
		Description: "For lesson planning, educational content, and teaching resources",
		Role:        "Educational Content Developer specialized in [subject area] with experience in curriculum design",
		Goal:        "Develop [lesson plans | educational activities | assessment materials | learning resources] that effectively teach the targeted concepts",
		Format:      "Structured educational content organized into sections such as learning objectives, prerequisite knowledge, instructional activities, assessment strategies, and extensions for different learning levels",
		Context:     "Consider student age/grade level, prior knowledge, learning environment, available resources, and educational standards",
		Constraints: "Ensure age-appropriate content and vocabulary. Incorporate multiple learning modalities (visual, auditory, kinesthetic). Provide differentiation strategies for diverse learners.",
		Style:       "Clear, instructive, and engaging. Use bulleted lists for key points, provide examples to illustrate concepts, and include guiding questions to promote critical thinking.",
	},
	{
		ID:          "business",
		Name:        "Business / Marketing",
		Description: "For business strategy, marketing content, and commercial planning",
		Role:        "Business Strategist and Marketing Specialist with expertise in [market analysis | brand positioning | campaign development | customer engagement]",
		Goal:        "Create [marketing strategy | business plan | campaign proposal | market analysis | customer personas] that achieves the specified business objectives",
		Format:      "Professional business document structured into sections such as executive summary, market analysis, strategic recommendations, implementation timeline, and success metrics",
		Context:     "Consider target market, competitive landscape, brand positioning, budget constraints, and business objectives",
		Constraints: "Ensure recommendations are data-driven and realistic. Focus on measurable outcomes. Avoid generic advice without specific application to the business context.",
		Style:       "Professional, strategic, and persuasive. Use business terminology appropriately, incorporate bullet points for key recommendations, and balance creativity with practical business considerations.",
	},
	{
		ID:          "philosophy",
		Name:        "Philosophy / Debate",
		Description: "For argument analysis, logical critique, and idea refinement",
		Role:        "Philosophical Thinker and Debate Specialist with expertise in logical reasoning and argument construction",
		Goal:        "Develop [argument analysis | philosophical position | logical critique | thought experiment | debate preparation] that explores the given topic with intellectual rigor",
		Format:      "Structured philosophical discourse organized into sections such as premise identification, logical analysis, counterarguments, supporting evidence, and philosophical implications",
		Context:     "Consider relevant philosophical traditions, historical context, opposing viewpoints, and the specific question or position being examined",
		Constraints: "Maintain logical consistency and intellectual honesty. Identify unstated assumptions. Avoid conflating descriptive and normative claims unless explicitly addressing their relationship.",
		Style:       "Thoughtful, nuanced, and precise. Use clear logical structure, define terms carefully, acknowledge limitations of arguments, and engage with counterpoints in a charitable manner.",
	},
}

var byID = func() map[string]IndustryTemplate {
	m := make(map[string]IndustryTemplate, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()

// ByID looks up a template by its identifier.
func ByID(id string) (IndustryTemplate, bool) {
	t, ok := byID[id]
	return t, ok
}

// All returns the full catalog in declaration order.
func All() []IndustryTemplate {
	out := make([]IndustryTemplate, len(catalog))
	copy(out, catalog)
	return out
}
