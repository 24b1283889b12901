package offline

import "arogya-mitr/internal/dataset"

// Fixed response texts, in both bundled languages. These strings are part of
// the contract: callers compare against them to detect the no-match case.

const (
	notFoundEN = "Sorry, I could not find information about this disease. Please provide the specific disease name or symptoms."
	notFoundHI = "क्षमा करें, मैं इस बीमारी के बारे में जानकारी नहीं ढूंढ सका। कृपया विशिष्ट बीमारी का नाम या लक्षण बताएं।"

	disclaimerEN = "This information is for educational purposes only. Seek immediate medical attention for serious symptoms."
	disclaimerHI = "यह जानकारी केवल शैक्षिक उद्देश्यों के लिए है। गंभीर लक्षणों के लिए तुरंत चिकित्सकीय सहायता लें।"

	declineEN = "I can only suggest medicines for common, non-serious ailments. Please consult a doctor or pharmacist for this condition."
	declineHI = "मैं केवल सामान्य, गैर-गंभीर बीमारियों के लिए दवा सुझा सकता हूं। कृपया इस स्थिति के लिए डॉक्टर या फार्मासिस्ट से सलाह लें।"

	noSuggestionsEN = "No medicine suggestions are available for this condition. Please consult a pharmacist."
	noSuggestionsHI = "इस स्थिति के लिए कोई दवा सुझाव उपलब्ध नहीं है। कृपया फार्मासिस्ट से सलाह लें।"
)

// NotFound is the defined empty-result sentence; it is not an error.
func NotFound(lang dataset.Language) string {
	if lang.Hindi() {
		return notFoundHI
	}
	return notFoundEN
}

// OfflineSuffix is appended to fallback responses produced while the online
// path is unavailable.
func OfflineSuffix(lang dataset.Language) string {
	if lang.Hindi() {
		return "\n\n(ऑफ़लाइन मोड में प्रतिक्रिया)"
	}
	return "\n\n(Response in offline mode)"
}

// OnlineFailedSuffix marks a fallback produced because the online service
// failed mid-flight rather than being unreachable.
func OnlineFailedSuffix(lang dataset.Language) string {
	if lang.Hindi() {
		return "\n\n(ऑफ़लाइन मोड में प्रतिक्रिया - ऑनलाइन सेवा असफल)"
	}
	return "\n\n(Response in offline mode - online service failed)"
}

// CategoryResponse returns the curated paragraph for a health-topic shortcut.
// Used only when offline and a shortcut (not free text) was selected; the
// generic dataset lookup is bypassed on purpose.
func CategoryResponse(categoryID string, lang dataset.Language) string {
	hi := lang.Hindi()
	switch categoryID {
	case "emergency":
		if hi {
			return "[Immediate Action] → स्थिति बताएँ: बीमारी/लक्षण का नाम लिखें (जैसे: दमा, छाती में दर्द).\n[What NOT to Do] → गलत घरेलू इलाज न करें, समय बर्बाद न करें.\n[Red Flags] → बेहोशी, सांस में तकलीफ, तेज छाती दर्द.\n[Emergency Help] → 108 पर कॉल करें या नज़दीकी अस्पताल जाएँ."
		}
		return "[Immediate Action] → Tell the condition: type the disease/symptom (e.g., asthma, chest pain).\n[What NOT to Do] → Avoid risky home remedies or delays.\n[Red Flags] → Unconsciousness, breathing trouble, severe chest pain.\n[Emergency Help] → Call 108 or go to the nearest hospital."
	case "preventive":
		if hi {
			return "रोकथाम: स्वच्छ पानी, हाथ धोना, टीकाकरण, पौष्टिक आहार, रोज़ाना 30 मिनट व्यायाम, धूम्रपान/शराब से दूरी, समय पर जांच।"
		}
		return "Prevention: Safe water, handwashing, vaccinations, nutritious diet, 30 min daily exercise, avoid tobacco/alcohol, timely checkups."
	case "elderly":
		if hi {
			return "वरिष्ठजन देखभाल: दवाएं समय पर, हल्का व्यायाम/टहलना, कैल्शियम/प्रोटीन आहार, गिरने से बचाव, BP/शुगर की नियमित जांच, पर्याप्त पानी/नींद।"
		}
		return "Elderly care: regular medicines, light walk/exercise, protein/calcium diet, fall prevention, regular BP/sugar checks, adequate water/sleep."
	case "maternal":
		if hi {
			return "मातृ स्वास्थ्य: आयरन/कैल्शियम, टिटनस/अन्य टीके, संतुलित आहार, पर्याप्त पानी/आराम, खतरनाक संकेत पर तुरंत अस्पताल (भारी रक्तस्राव, तेज पेट दर्द)।"
		}
		return "Maternal health: iron/calcium, TT and needed vaccines, balanced diet, hydration/rest, seek hospital for red flags (heavy bleeding, severe pain)."
	case "vaccination":
		if hi {
			return "टीकाकरण: बच्चों के सभी टीके समय पर लगवाएँ (BCG, OPV, DPT, MMR आदि). रिकॉर्ड सुरक्षित रखें; बुखार/कमज़ोर बच्चे पर डॉक्टर की सलाह लें।"
		}
		return "Vaccination: ensure timely childhood shots (BCG, OPV, DPT, MMR, etc.). Keep records; consult doctor if fever/weakness."
	case "chronic":
		if hi {
			return "दीर्घकालिक रोग: दवा नियमित, नमक/शक्कर सीमित, रोज़ाना टहलना, वजन नियंत्रण, BP/शुगर नोट करें, लक्षण बढ़ें तो डॉक्टर से मिलें।"
		}
		return "Chronic care: take meds regularly, limit salt/sugar, daily walk, weight control, log BP/sugar, see doctor if symptoms worsen."
	default: // "symptoms" and anything unrecognized
		if hi {
			return "कृपया अपने लक्षणों का नाम और अवधि लिखें (कब से, कितना तेज/ज़्यादा), ताकि सही मार्गदर्शन दिया जा सके।"
		}
		return "Please describe your symptoms with name and duration (since when, how severe) for proper guidance."
	}
}
