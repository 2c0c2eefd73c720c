package engine

// Canned response texts. The classification cascade in classify.go picks
// among these; testers rely on their exact wording for fixtures, so edit
// with care.

const haikuText = "Requests flow like streams\n" +
	"JSON blossoms in response\n" +
	"Status two hundred"

const pythonSnippet = "Here's a Python function that should help:\n\n" +
	"```python\n" +
	"def process_items(items):\n" +
	"    \"\"\"Process a list of items and return the results.\"\"\"\n" +
	"    results = []\n" +
	"    for item in items:\n" +
	"        results.append(transform(item))\n" +
	"    return results\n" +
	"```\n\n" +
	"Adjust the transform step to match your data. Let me know if you need error handling or type hints added."

const javascriptSnippet = "Here's a JavaScript function that should help:\n\n" +
	"```javascript\n" +
	"function processItems(items) {\n" +
	"  return items.map((item) => transform(item));\n" +
	"}\n" +
	"```\n\n" +
	"Swap in your own transform logic. I can also show an async version if your data source returns promises."

const codeAssistText = "I can help with that code. Share the snippet you're working on along with the language and " +
	"what you expect it to do, and I'll walk through the logic, point out likely issues, and suggest a cleaner structure."

const debugChecklistText = "Let's debug this step by step:\n\n" +
	"1. Read the full error message and note the exact line it points to.\n" +
	"2. Check the inputs at that line - log or print the values actually being passed.\n" +
	"3. Verify your assumptions about types and null/undefined values.\n" +
	"4. Reduce the failing case to the smallest input that still reproduces it.\n\n" +
	"If you paste the error text and the surrounding code, I can narrow it down further."

const explainText = "Great question. The key idea is to break the concept into its inputs, the transformation it " +
	"performs, and its outputs. Start with the simplest case, confirm you can predict the result, and then layer the " +
	"edge cases back in one at a time. If you tell me which part feels unclear, I can go deeper with a concrete example."

const testingAdviceText = "For testing, focus on behaviour rather than implementation: cover the happy path, each " +
	"documented error, and the boundary values in between. Keep tests independent so they can run in any order, and " +
	"make the failure message say what was expected versus what happened. Start with the cases most likely to break."

var imageDescriptions = []string{
	"This image shows a scenic landscape with rolling hills under a partly cloudy sky. The lighting suggests late " +
		"afternoon, with long shadows across the foreground and warm tones on the horizon.",
	"The image contains a group of objects arranged on a flat surface. The composition draws the eye to the centre, " +
		"where the main subject is in sharp focus against a softly blurred background.",
	"This image depicts an urban scene with buildings and street-level detail. There is visible signage and a mix of " +
		"architectural styles, photographed from a slightly elevated vantage point.",
}

var defaultLeadIns = []string{
	"That's an interesting question.",
	"I'd be happy to help with that.",
	"Let me think about that for a moment.",
	"Good point - there are a few ways to look at this.",
}

const defaultAdviceText = "A good next step is to narrow the question down: describe the outcome you want, what " +
	"you've already tried, and where it diverged from your expectation. The more specific the question, the more " +
	"useful the answer."
