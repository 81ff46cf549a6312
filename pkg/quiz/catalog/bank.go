package catalog

import (
	"archetype-quiz-be/pkg/quiz/taxonomy"
	"archetype-quiz-be/pkg/quiz/textmatch"
	"archetype-quiz-be/pkg/store"
)

// Default builds the built-in question bank and lookup tables. The
// content is versioned configuration; the engine never depends on the
// specific wording, only on the structure.
func Default() *Catalog {
	c := &Catalog{
		Rapid: []Question{
			{
				ID:     "p1_q1",
				Phase:  store.PhaseRapid,
				Kind:   InputChoice,
				Prompt: "You're joining a project that's been running for four months. The documentation lives in three different places. Two people on the team disagree about what's actually been delivered. Work is still happening, but there's no clear structure holding it. What's your actual first move?",
				Options: []Option{
					{ID: "a", Text: "Get clear on what's already done — I need an honest picture before I touch anything.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSteward)}},
					{ID: "b", Text: "Pick the most important thing moving and start pushing it forward.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeMaker)}},
					{ID: "c", Text: "Talk to the people involved — I want to understand what each of them thinks is happening.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeConnector)}},
					{ID: "d", Text: "Identify what's creating the drift and name it, even if that's uncomfortable.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeGuardian)}},
					{ID: "e", Text: "Look for how other teams or projects have handled this kind of situation — I want outside angles.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeExplorer)}},
					{ID: "f", Text: "Sit with it until I understand the pattern underneath — then name it.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSage)}},
				},
			},
			{
				ID:     "p1_q2",
				Phase:  store.PhaseRapid,
				Kind:   InputChoice,
				Prompt: "Something matters in a community or organization you're part of. It's not urgent. Nobody owns it. You've noticed it for a while. What actually happens?",
				Options: []Option{
					{ID: "a", Text: "I start handling the parts that aren't getting handled — quietly, without making it a production.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSteward)}},
					{ID: "b", Text: "I start thinking about what a proper solution would look like and sketch it out.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeMaker)}},
					{ID: "c", Text: "I find out who else has noticed and whether there's energy to do something about it together.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeConnector)}},
					{ID: "d", Text: "I figure out what's at risk if this keeps being ignored and say so clearly.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeGuardian)}},
					{ID: "e", Text: "I go looking for how others have solved this — in different contexts, different fields.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeExplorer)}},
					{ID: "f", Text: "I observe it for longer — most unattended things are telling you something if you watch them.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSage)}},
				},
			},
			{
				ID:     "p1_q3",
				Phase:  store.PhaseRapid,
				Kind:   InputChoice,
				Prompt: "Something you've been part of is winding down. There's no clear plan for what happens to what was built — the relationships, the knowledge, the work itself. What do you pay attention to?",
				Options: []Option{
					{ID: "a", Text: "Making sure the handoffs are clean — nothing important falls through the gap.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSteward)}},
					{ID: "b", Text: "What could be carried forward, repurposed, or built into something new.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeMaker), taxonomy.DomainSignal(taxonomy.DomainTechnology)}},
					{ID: "c", Text: "Making sure the right people stay in contact when this ends.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeConnector), taxonomy.DomainSignal(taxonomy.DomainHumanBeing)}},
					{ID: "d", Text: "What needs to be protected — what shouldn't be lost even if the project is gone.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeGuardian), taxonomy.DomainSignal(taxonomy.DomainLegacy)}},
					{ID: "e", Text: "What this whole thing learned that should be documented and taken somewhere.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeExplorer), taxonomy.ScaleSignal(taxonomy.ScaleGlobal)}},
					{ID: "f", Text: "What this project revealed about how this kind of work actually functions.", Signals: []taxonomy.Signal{taxonomy.ArchetypeSignal(taxonomy.ArchetypeSage), taxonomy.DomainSignal(taxonomy.DomainVision)}},
				},
			},
		},

		Tiebreaker: Question{
			ID:     "p1_tiebreaker",
			Phase:  store.PhaseTiebreaker,
			Kind:   InputFreeText,
			Prompt: "Think about the last time something needed doing and wasn't getting done. Not a work scenario necessarily — anything. What did you actually do?",
		},

		Behavior: Question{
			ID:     "p2_q4_behavior",
			Phase:  store.PhaseRefinement,
			Kind:   InputFreeText,
			Prompt: "Think about something you were genuinely absorbed in recently — work, personal, anything. Describe what you were actually doing in a sentence or two.",
		},

		Scale: Question{
			ID:     "p2_q6_scale",
			Phase:  store.PhaseRefinement,
			Kind:   InputChoice,
			Prompt: "When you imagine your contribution at its fullest — the work that feels most you — what's the natural scope?",
			Options: []Option{
				{ID: "a", Text: "People and places I know directly — my neighborhood, my community, face-to-face.", Signals: []taxonomy.Signal{taxonomy.ScaleSignal(taxonomy.ScaleLocal)}},
				{ID: "b", Text: "My region — the watershed, the city, the bioregion I'm part of.", Signals: []taxonomy.Signal{taxonomy.ScaleSignal(taxonomy.ScaleBioregional)}},
				{ID: "c", Text: "International, cross-border — planetary scale challenges and systems.", Signals: []taxonomy.Signal{taxonomy.ScaleSignal(taxonomy.ScaleGlobal)}},
				{ID: "d", Text: "Intergenerational — working for people not yet born, thinking in decades or centuries.", Signals: []taxonomy.Signal{taxonomy.ScaleSignal(taxonomy.ScaleCivilizational)}},
			},
		},

		DomainClarify: Question{
			ID:     "p2_q5_domain",
			Phase:  store.PhaseRefinement,
			Kind:   InputFreeText,
			Prompt: "One more thing — what area of collective work does this belong to? Is it more about people's inner development, social structures, nature and ecology, technology and tools, economics and resources, long-term preservation, or coordinating toward a shared future?",
		},

		ConfusedPairs: []Pair{
			{A: taxonomy.ArchetypeSteward, B: taxonomy.ArchetypeGuardian},
			{A: taxonomy.ArchetypeMaker, B: taxonomy.ArchetypeExplorer},
			{A: taxonomy.ArchetypeConnector, B: taxonomy.ArchetypeSage},
		},

		DefaultArchetype: taxonomy.ArchetypeSteward,
		DefaultDomain:    taxonomy.DomainSociety,
		DefaultScale:     taxonomy.ScaleLocal,

		Thresholds: DefaultThresholds(),
	}

	c.Forks = map[string]Question{
		"steward__guardian": {
			ID:     "fork_steward_guardian",
			Phase:  store.PhaseFork,
			Kind:   InputChoice,
			Prompt: "When you're holding something that matters, which is closer to what you actually do?",
			Options: []Option{
				{ID: "a", Text: "I keep it alive — tending it, maintaining it, making sure it keeps working day to day.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeSteward), Weight: 2}}},
				{ID: "b", Text: "I defend it — watching for what threatens it and holding the line before damage happens.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeGuardian), Weight: 2}}},
			},
		},
		"maker__explorer": {
			ID:     "fork_maker_explorer",
			Phase:  store.PhaseFork,
			Kind:   InputChoice,
			Prompt: "When something needed doesn't exist yet, which is closer to your actual move?",
			Options: []Option{
				{ID: "a", Text: "I build it — turn the idea into something concrete that works.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeMaker), Weight: 2}}},
				{ID: "b", Text: "I go find it — search the edges until I locate what's missing and bring it back.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeExplorer), Weight: 2}}},
			},
		},
		"connector__sage": {
			ID:     "fork_connector_sage",
			Phase:  store.PhaseFork,
			Kind:   InputChoice,
			Prompt: "When a group is stuck, which is closer to what you actually contribute?",
			Options: []Option{
				{ID: "a", Text: "I bring the right people together — the stuckness usually dissolves once they're in the room.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeConnector), Weight: 2}}},
				{ID: "b", Text: "I name what's actually happening underneath — the pattern nobody has said out loud yet.", Signals: []taxonomy.Signal{{Axis: taxonomy.AxisArchetype, Member: string(taxonomy.ArchetypeSage), Weight: 2}}},
			},
		},
	}

	c.DomainKeywords = map[string][]string{
		string(taxonomy.DomainHumanBeing): {"body", "mind", "therapy", "healing", "consciousness", "awareness", "somatic", "mental health", "emotional", "capacity", "development", "inner", "self", "wellness", "meditation", "spiritual"},
		string(taxonomy.DomainSociety):    {"community", "governance", "policy", "education", "culture", "justice", "equity", "social", "organize", "collective", "political", "civic", "neighborhood", "city", "government"},
		string(taxonomy.DomainNature):     {"ecosystem", "biodiversity", "climate", "soil", "water", "agriculture", "farming", "conservation", "environment", "regenerative", "ecological", "watershed", "habitat", "species", "planet"},
		string(taxonomy.DomainTechnology): {"software", "digital", "infrastructure", "AI", "code", "system", "platform", "tech", "engineering", "tool", "data", "internet", "computer", "algorithm", "network"},
		string(taxonomy.DomainFinance):    {"money", "capital", "investment", "economic", "wealth", "resources", "funding", "budget", "finance", "currency", "allocation", "market", "economy", "financial", "redistribution"},
		string(taxonomy.DomainLegacy):     {"future", "generations", "preservation", "knowledge", "archive", "tradition", "cultural", "heritage", "long-term", "intergenerational", "ancestor", "history", "memory", "century"},
		string(taxonomy.DomainVision):     {"future", "possibility", "imagination", "coordinate", "alignment", "scenario", "foresight", "collective vision", "narrative", "hope", "movement", "direction", "planning"},
	}

	// Ordered: the first matching keyword wins, so more specific words
	// come before generic ones.
	c.DomainClarifyKeywords = []textmatch.Rule{
		{Keyword: "inner", Member: string(taxonomy.DomainHumanBeing)},
		{Keyword: "people", Member: string(taxonomy.DomainHumanBeing)},
		{Keyword: "development", Member: string(taxonomy.DomainHumanBeing)},
		{Keyword: "social", Member: string(taxonomy.DomainSociety)},
		{Keyword: "community", Member: string(taxonomy.DomainSociety)},
		{Keyword: "governance", Member: string(taxonomy.DomainSociety)},
		{Keyword: "nature", Member: string(taxonomy.DomainNature)},
		{Keyword: "ecology", Member: string(taxonomy.DomainNature)},
		{Keyword: "environment", Member: string(taxonomy.DomainNature)},
		{Keyword: "technology", Member: string(taxonomy.DomainTechnology)},
		{Keyword: "tech", Member: string(taxonomy.DomainTechnology)},
		{Keyword: "tools", Member: string(taxonomy.DomainTechnology)},
		{Keyword: "economic", Member: string(taxonomy.DomainFinance)},
		{Keyword: "money", Member: string(taxonomy.DomainFinance)},
		{Keyword: "resources", Member: string(taxonomy.DomainFinance)},
		{Keyword: "finance", Member: string(taxonomy.DomainFinance)},
		{Keyword: "preservation", Member: string(taxonomy.DomainLegacy)},
		{Keyword: "long-term", Member: string(taxonomy.DomainLegacy)},
		{Keyword: "future", Member: string(taxonomy.DomainVision)},
		{Keyword: "coordinate", Member: string(taxonomy.DomainVision)},
		{Keyword: "vision", Member: string(taxonomy.DomainVision)},
	}

	c.ArchetypeVerbs = map[string][]string{
		string(taxonomy.ArchetypeSteward):   {"maintain", "manage", "organize", "keep", "tend", "sustain", "handle", "care"},
		string(taxonomy.ArchetypeMaker):     {"build", "create", "make", "design", "construct", "develop", "produce", "fix"},
		string(taxonomy.ArchetypeConnector): {"connect", "bring", "talk", "reach out", "coordinate", "facilitate", "introduce"},
		string(taxonomy.ArchetypeGuardian):  {"protect", "defend", "prevent", "guard", "check", "ensure", "stop"},
		string(taxonomy.ArchetypeExplorer):  {"explore", "research", "investigate", "discover", "find", "learn", "try"},
		string(taxonomy.ArchetypeSage):      {"understand", "analyze", "observe", "reflect", "consider", "think", "study"},
	}

	c.Sentiment = textmatch.SentimentLexicon{
		Positive:  []string{"yes", "that fits", "accurate", "true", "makes sense", "exactly", "spot on", "definitely"},
		Negative:  []string{"no", "doesn't fit", "not really", "off", "wrong", "not me", "doesn't feel"},
		Uncertain: []string{"partly", "somewhat", "maybe", "kind of", "sort of", "not sure", "mostly"},
	}

	c.Profiles = map[taxonomy.Archetype]Profile{
		taxonomy.ArchetypeSteward: {
			Behavioral:  "You sustain. Where others build and move on, you stay — tending, maintaining, improving what exists. You notice what needs attention before it becomes a problem. You carry things others forget they handed to you.",
			WorldImpact: "In the world, this looks like: you're the one things don't fall apart around. Systems stay functional. Knowledge doesn't get lost. The work that matters keeps moving because you're tending it.",
			Pairing:     "Pair with a Maker to prevent stagnation and unlock new paths.",
		},
		taxonomy.ArchetypeMaker: {
			Behavioral:  "You create. Ideas aren't real to you until they exist in the world. You move from concept to creation quickly. You value function over perfection. When something needs to exist, you're the one who brings it into being.",
			WorldImpact: "In the world, this looks like: the tools exist. The structures are there. The solutions people needed actually get built. You turn 'we should' into 'here it is.'",
			Pairing:     "Pair with a Steward to operationalise and finish what you start.",
		},
		taxonomy.ArchetypeConnector: {
			Behavioral:  "You weave relationships. You see who needs who. You notice complementary patterns. You facilitate collaboration without dominating it. When groups work well together, you're often the reason — you made people feel safe enough to show up.",
			WorldImpact: "In the world, this looks like: people find each other. Partnerships form. Communities cohere. The right people end up in the same room at the right time, and things happen that wouldn't have otherwise.",
			Pairing:     "Pair with a Sage for depth and clarity in the field you're weaving.",
		},
		taxonomy.ArchetypeGuardian: {
			Behavioral:  "You protect what matters. You see threats before they materialize. You hold boundaries. You ask the questions others avoid: 'What could go wrong?' 'Who's protecting this?' You defend so others don't have to.",
			WorldImpact: "In the world, this looks like: what's vulnerable gets to survive. What's sacred doesn't get destroyed. The line holds. People who can't protect themselves don't have to — because you're standing there.",
			Pairing:     "Pair with an Explorer to avoid rigidity and keep protection life-serving.",
		},
		taxonomy.ArchetypeExplorer: {
			Behavioral:  "You move toward edges. Toward what hasn't been mapped yet. You're comfortable with uncertainty. You don't explore for novelty — you explore because something's needed and it's not here yet. You go out, you find it, you bring it back.",
			WorldImpact: "In the world, this looks like: new territory gets mapped. Breakthroughs happen. The answers that weren't available become available because you went and found them.",
			Pairing:     "Pair with a Guardian to stabilise discoveries into something usable.",
		},
		taxonomy.ArchetypeSage: {
			Behavioral:  "You see patterns. Not just once — across time, across contexts. You understand why things are the way they are. You hold complexity without simplifying prematurely. When people are stuck, you're the one who names what's actually happening underneath.",
			WorldImpact: "In the world, this looks like: people see more clearly. Groups stop repeating the same patterns. The right question gets asked. Understanding deepens.",
			Pairing:     "Pair with a Connector so wisdom travels and becomes shared seeing.",
		},
	}

	c.Subdomains = map[taxonomy.Domain]SubdomainMenu{
		taxonomy.DomainHumanBeing: {
			Prompt: "Within Human Being, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "physical", Text: "Physical health and the body — how people inhabit themselves physically, somatic work, movement, nervous system."},
				{ID: "mental_emotional", Text: "Mental and emotional wellbeing — how minds function, therapy, psychology, emotional capacity."},
				{ID: "consciousness", Text: "Consciousness and inner development — the interior life, awareness, spiritual development, depth."},
				{ID: "capacity", Text: "Capacity building — what enables people to function at their best, skills, resilience, self-knowledge."},
			},
		},
		taxonomy.DomainSociety: {
			Prompt: "Within Society, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "governance", Text: "Governance and decision-making — how collective decisions get made, who has power, how it's held accountable."},
				{ID: "justice", Text: "Justice and equity systems — who's protected, who's vulnerable, law, rights, structural inequity."},
				{ID: "education", Text: "Education and learning — how knowledge gets transmitted, what gets taught and how."},
				{ID: "community", Text: "Community and culture — how people form functioning social units, local culture, what we celebrate."},
				{ID: "conflict", Text: "Conflict and repair — mediation, restorative practice, how we move through breakdown."},
			},
		},
		taxonomy.DomainNature: {
			Prompt: "Within Nature, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "soil_food", Text: "Soil, food, and agriculture — farming, soil health, food systems, how we grow what we eat."},
				{ID: "water", Text: "Water and watersheds — rivers, rainfall, water access, watershed health."},
				{ID: "biodiversity", Text: "Biodiversity and ecosystems — habitats, conservation, rewilding, the web of life."},
				{ID: "climate", Text: "Climate and atmosphere — planetary systems that regulate temperature and weather."},
				{ID: "relationship", Text: "The human relationship with nature — how people connect with and position themselves within the living world."},
			},
		},
		taxonomy.DomainTechnology: {
			Prompt: "Within Technology, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "digital", Text: "Digital infrastructure and software — platforms, systems that organize information and communication."},
				{ID: "ai", Text: "Artificial intelligence — how machine intelligence gets built, deployed, and governed."},
				{ID: "physical_infra", Text: "Physical infrastructure — energy grids, transport, water systems, the built environment."},
				{ID: "biotech", Text: "Biotechnology and life sciences — medicine, genetics, how we engineer living systems."},
				{ID: "ethics", Text: "Tool ethics and design — whether and how technology serves human and ecological life."},
			},
		},
		taxonomy.DomainFinance: {
			Prompt: "Within Finance & Economy, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "capital", Text: "Capital and investment — how money moves toward certain futures, impact investing, philanthropic capital."},
				{ID: "distribution", Text: "Wealth distribution and access — who has resources and why, inequality, economic justice."},
				{ID: "alternative", Text: "Alternative economic models — cooperatives, commons, local currencies, regenerative economics."},
				{ID: "allocation", Text: "Resource allocation systems — how systems decide what gets funded, budgets, grants, policy."},
			},
		},
		taxonomy.DomainLegacy: {
			Prompt: "Within Legacy, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "preservation", Text: "Cultural preservation — keeping knowledge, practices, languages alive."},
				{ID: "transmission", Text: "Knowledge transmission — how what's known gets passed on, teaching, documentation, oral tradition."},
				{ID: "future_gen", Text: "Future generations thinking — working for people not yet born, seven-generation thinking."},
				{ID: "deep_time", Text: "Deep time and long horizons — thinking in centuries, what outlives institutions."},
			},
		},
		taxonomy.DomainVision: {
			Prompt: "Within Vision, there are different corners. Which feels most like where your energy lives?",
			Options: []SubdomainOption{
				{ID: "collective", Text: "Collective visioning — helping groups see a shared future, what it takes to imagine together."},
				{ID: "scenarios", Text: "Scenario planning and futures thinking — mapping what's possible, strategic foresight."},
				{ID: "coordination", Text: "Coordination infrastructure — systems that allow diverse actors to align without agreeing on everything."},
				{ID: "narrative", Text: "Narrative and possibility — stories that make alternative futures feel real."},
			},
		},
	}

	c.index()
	return c
}
