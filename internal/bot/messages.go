package bot

// Fixed user-facing texts. Raw provider errors never reach the user;
// the router maps every failure onto one of these.

const welcomeMsg = `🤖 *Welcome to YouTube Summarizer Bot!*

I'm your personal AI research assistant for YouTube videos. Here's what I can do:

📎 *Send me a YouTube link* — I'll generate a structured summary
❓ *Ask follow-up questions* — I'll answer based on the video content
🌐 *Multi-language support* — Request summaries in Hindi, Kannada, Tamil, and more!

*Commands:*
/help — Show this help message
/summary — Re-display last summary
/deepdive — Detailed section-by-section analysis
/actionpoints — Extract actionable items
/language — Change response language

Just paste a YouTube link to get started! 🚀`

// helpMsgTemplate takes the supported-language list.
const helpMsgTemplate = `📚 *YouTube Summarizer Bot — Help*

*How to use:*
1️⃣ Send a YouTube link → Get a structured summary
2️⃣ Ask questions → Get answers grounded in the video
3️⃣ Change language → Say "summarize in Hindi" or use /language

*Commands:*
• /start — Welcome message
• /help — This help message
• /summary — Re-display the last summary
• /deepdive — Detailed breakdown of the video
• /actionpoints — Extract action items & tips
• /language ` + "`<lang>`" + ` — Set response language

*Supported Languages:*
%s

*Tips:*
• I can handle follow-up questions about the video
• Say "explain in Hindi" to switch language mid-conversation
• If a topic isn't in the video, I'll tell you honestly

*Edge Cases:*
• Videos without captions/subtitles can't be summarized
• Very long videos are processed in chunks
• Private or age-restricted videos can't be accessed`

const errInvalidURL = "❌ *That doesn't look like a valid YouTube URL.*\n\n" +
	"Please send a link like:\n" +
	"`https://youtube.com/watch?v=XXXXX`"

const errNoTranscript = "⚠️ *No transcript available for this video.*\n\n" +
	"This might happen because:\n" +
	"• The video has no captions/subtitles\n" +
	"• Captions are disabled by the uploader\n" +
	"• The video is a live stream or premiere\n\n" +
	"Try a different video!"

const errVideoNotFound = "❌ *Video not found.*\n\n" +
	"The video may be private, deleted, or age-restricted.\n" +
	"Please check the URL and try again."

const errProcessing = "⚙️ *Something went wrong while processing your request.*\n\n" +
	"Please try again in a moment. If the issue persists, " +
	"try a different video."

const errEmptyModelResponse = "⚠️ *The AI model returned an empty response.*\n\n" +
	"Please try again in a moment."

const errBusy = "⏳ *Too many requests!*\n\n" +
	"Please wait a moment before sending another video.\n" +
	"I'm still processing your previous request."

const errNoSession = "💡 *No video loaded yet!*\n\n" +
	"Send me a YouTube link first, and then you can ask questions about it."

const followUpHint = "💬 *You can now ask me questions about this video!*\n" +
	"Or try /deepdive for a detailed analysis, or /actionpoints for action items."
