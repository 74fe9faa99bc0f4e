// Package synthesizer generates markdown notes and titles from
// extracted text with a generative AI model.
package synthesizer

import (
	"context"
	"fmt"
)

// Synthesizer produces the note body and title for extracted text.
type Synthesizer interface {
	// SynthesizeNotes returns structured markdown notes for text.
	SynthesizeNotes(ctx context.Context, text string) (string, error)

	// SynthesizeTitle returns a concise title for the generated notes.
	SynthesizeTitle(ctx context.Context, text string) (string, error)
}

const notesPromptTemplate = `
        Convert the following text into **beautifully structured Markdown notes** optimized for Notin.

        ### Formatting Guidelines:
        - Use **headings and subheadings** (` + "`#`, `##`, `###`" + `) for clear hierarchy.
        - Format text with **bold**, *italics*, **_both_**, and ` + "`inline code`" + ` when relevant.
        - Use **code blocks** with language tags (` + "```python, ```javascript, ```sql" + `, etc.) for examples and snippets.
        - Support **LaTeX math** inside ` + "`$...$` or `$$...$$`" + ` for equations, formulas, and advanced notation.
        - Organize information using (only if necessary, dont overuse it):
        - Bulleted lists
        - Numbered lists
        - Nested lists (if needed)
        - 📌 Task lists (` + "`- [ ]` / `- [x]`" + `) for actionable items
        - Use **blockquotes** (` + "`>`" + `) for definitions, tips, or inspirational quotes.
        - Add **tables** where structured comparisons or data are needed.
        - Use emojis 🎯 sparingly to improve readability (⚡️ for key ideas, 📌 for important points, 💡 for tips, 🚀 for actions).
        - Keep the output **clean, concise, and scannable**, but showcase Markdown’s full expressive power.

        ### Input:
        %s

        ### Output:
        Return only the **final Markdown-formatted notes** with proper syntax highlighting, LaTeX, and clean structure.
    `

const titlePromptTemplate = `
        Convert the following text into a **concise title** optimized for the appropriate input.

        ### Input:
        %s

        ### Output:
        Return only the **final title** without any additional text or explanation.
    `

// NotesPrompt builds the note generation prompt for text.
func NotesPrompt(text string) string {
	return fmt.Sprintf(notesPromptTemplate, text)
}

// TitlePrompt builds the title generation prompt for text.
func TitlePrompt(text string) string {
	return fmt.Sprintf(titlePromptTemplate, text)
}
