package resume

import (
	"fmt"
	"strings"
)

// GenerateVideoDescription turns parsed resume data into a first-person
// content description suitable for dialogue generation. Unknown focus
// values use the comprehensive template.
func GenerateVideoDescription(data Data, focus string) string {
	switch focus {
	case "technical":
		return technicalDescription(data)
	case "leadership":
		return leadershipDescription(data)
	case "projects":
		return projectsDescription(data)
	default:
		return comprehensiveDescription(data)
	}
}

func displayName(data Data) string {
	if data.PersonalInfo.Name != "" {
		return data.PersonalInfo.Name
	}
	return "Professional"
}

func comprehensiveDescription(data Data) string {
	role := data.CurrentRole
	if role == "" {
		role = "Professional"
	}

	skills := "various technologies"
	if len(data.Skills.Technical) > 0 {
		skills = strings.Join(firstN(data.Skills.Technical, 5), ", ")
	}

	return strings.TrimSpace(fmt.Sprintf(`
I'm %s, a %s. %s

I specialize in %s, with extensive hands-on experience in delivering high-quality solutions.

Throughout my career, I've focused on continuous learning and taking on challenges that push boundaries.

I'm looking forward to opportunities where I can contribute my expertise and continue growing.
`, displayName(data), role, data.ProfessionalSummary, skills))
}

func technicalDescription(data Data) string {
	skills := "modern technologies"
	if len(data.Skills.Technical) > 0 {
		skills = strings.Join(firstN(data.Skills.Technical, 5), ", ")
	}

	return strings.TrimSpace(fmt.Sprintf(`
I'm %s, a technical professional with deep expertise in %s.

I have a proven track record of building scalable, efficient solutions using industry best practices.

I'm always exploring new technologies and staying at the forefront of developments.

I'm excited about opportunities to work on challenging technical problems.
`, displayName(data), skills))
}

func leadershipDescription(data Data) string {
	role := data.CurrentRole
	if role == "" {
		role = "Leader"
	}

	return strings.TrimSpace(fmt.Sprintf(`
I'm %s, a %s with a track record of leading successful teams and projects.

My approach to leadership is built on empowering team members and fostering collaboration.

I've successfully navigated complex challenges and delivered impactful results.

I'm looking for opportunities to bring my leadership experience to organizations that value innovation.
`, displayName(data), role))
}

func projectsDescription(data Data) string {
	if len(data.Projects) == 0 {
		return comprehensiveDescription(data)
	}

	return strings.TrimSpace(fmt.Sprintf(`
I'm %s, passionate about building innovative solutions through hands-on projects.

My projects showcase my ability to take ideas from concept to completion with attention to detail.

I approach every project with user-centric design and a focus on delivering real value.

I'm excited to bring this project-driven mindset to new opportunities.
`, displayName(data)))
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
