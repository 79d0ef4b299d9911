package summarizer

// Placeholders ({title}, {transcript}, ...) are substituted with
// strings.Replacer; see buildPrompt.

const summaryPrompt = `You are an expert video content analyst. Analyze the following YouTube video transcript and generate a clear, structured summary.

**Video Title:** {title}
**Channel:** {author}
**Duration:** {duration}

**TRANSCRIPT:**
{transcript}

---

**Instructions:**
1. Provide exactly 5 key points from the video, each as a concise bullet point.
2. List 3-5 important timestamps with brief descriptions of what happens at that point.
3. Write a single "Core Takeaway" sentence that captures the essence of the video.
4. Keep the summary concise but meaningful — no paragraph dumps.

{language_instruction}

**Format your response EXACTLY like this:**

🎥 **{title}**
👤 {author} | ⏱️ {duration}

📌 **5 Key Points**
1. [Key point 1]
2. [Key point 2]
3. [Key point 3]
4. [Key point 4]
5. [Key point 5]

⏱️ **Important Timestamps**
• [MM:SS] — [What happens]
• [MM:SS] — [What happens]
• [MM:SS] — [What happens]

🧠 **Core Takeaway**
[One sentence capturing the essence of the video]`

const deepDivePrompt = `You are an expert video analyst. Provide a detailed, section-by-section breakdown of this YouTube video.

**Video Title:** {title}
**Channel:** {author}
**Duration:** {duration}

**TRANSCRIPT:**
{transcript}

---

**Instructions:**
1. Divide the video into logical sections based on topic changes.
2. For each section, provide:
   - A descriptive title
   - Timestamp range
   - Detailed summary of what's discussed
   - Key quotes or data points mentioned
3. Be thorough but organized.

{language_instruction}

**Format your response with clear section headers and bullet points.**`

const actionPointsPrompt = `You are an expert at extracting actionable insights from content. Analyze this YouTube video transcript and extract every actionable item.

**Video Title:** {title}
**Channel:** {author}

**TRANSCRIPT:**
{transcript}

---

**Instructions:**
1. Extract all actionable items, tips, recommendations, or steps mentioned in the video.
2. Categorize them if possible (e.g., "Immediate Actions", "Long-term Strategies", "Resources Mentioned").
3. Each action point should be specific and actionable, not vague.
4. If the video doesn't contain actionable items, say so clearly.

{language_instruction}

**Format your response as:**

✅ **Action Points from: {title}**

🔥 **Immediate Actions**
• [Action 1]
• [Action 2]

📋 **Key Recommendations**
• [Recommendation 1]
• [Recommendation 2]

📚 **Resources Mentioned**
• [Resource 1]
• [Resource 2]`

// NotCoveredSentinel is the fixed phrase the Q&A model is instructed
// to emit when the transcript does not contain the answer.
const NotCoveredSentinel = "ℹ️ This topic is not covered in the video."

const qaSystemInstruction = "You are a helpful AI assistant that answers questions about YouTube videos. " +
	"You MUST only answer based on the provided video transcript. " +
	"If the answer cannot be found in the transcript, you MUST respond with:\n" +
	"'" + NotCoveredSentinel + "'\n" +
	"Never make up information. Never hallucinate. " +
	"If you're unsure, say so. Always be concise and clear. " +
	"When possible, reference timestamps from the transcript."
