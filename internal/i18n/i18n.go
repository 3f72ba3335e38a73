// Package i18n holds the label tables for the three supported locales.
// Lookups fall back to English when a key is missing for a language.
package i18n

import "receiptbook/internal/core"

// Society is the fixed letterhead printed on receipts.
type Society struct {
	Title    string
	Subtitle string
	Address  string
	RegNo    string
}

var societies = map[core.Language]Society{
	core.English: {
		Title:    "Demo Apartment Division",
		Subtitle: "Co-op. Housing Service Society Ltd.",
		Address:  "Demo Address",
		RegNo:    "REG.NO Demo",
	},
	core.Gujarati: {
		Title:    "ડેમો એપાર્ટમેન્ટ વિભાગ",
		Subtitle: "કો.ઓપ. હાઉસિંગ સર્વિસ સોસાયટી લિ.",
		Address:  "ડેમો address",
		RegNo:    "REG.NO ડેમો",
	},
	core.Hindi: {
		Title:    "डेमो अपार्टमेंट विभाग",
		Subtitle: "को.ऑप. हाउसिंग सर्विस सोसाइटी लि.",
		Address:  "डेमो पता",
		RegNo:    "REG.NO डेमो",
	},
}

var translations = map[core.Language]map[string]string{
	core.English: {
		"appName":            "Receipt Book",
		"dashboard":          "Dashboard",
		"receipts":           "Receipts",
		"expenses":           "Expenses",
		"profile":            "Profile",
		"logout":             "Logout",
		"save":               "Save",
		"total":              "Total",
		"name":               "Name",
		"date":               "Date",
		"amount":             "Amount",
		"operation":          "Operation",
		"credit":             "Plus",
		"debit":              "Minus",
		"actions":            "Actions",
		"createdBy":          "Created By Yash K Pathak",
		"digitalCopyNotice":  "This is only a digital soft copy",
		"loginTitle":         "Admin Login",
		"username":           "Username",
		"password":           "Password",
		"login":              "Login",
		"invalidCredentials": "Invalid username or password",
		"welcome":            "Welcome",
		"totalReceipts":      "Total Receipts",
		"totalAmount":        "Total Amount Collected",
		"recentActivity":     "Recent Activity",
		"receiptManagement":  "Receipt Management",
		"createReceipt":      "Create Receipt",
		"receiptNumber":      "Receipt No.",
		"receiptList":        "Receipt List",
		"exportAllToExcel":   "Export All to Excel",
		"exportToPdf":        "Export to PDF",
		"expenseCalculator":  "Expense Calculator",
		"addExpense":         "Add Expense",
		"expenseList":        "Expense List",
		"runningTotal":       "Running Total",
		"adminProfile":       "Admin Profile",
		"fullName":           "Full Name",
		"blockNumber":        "Block/Flat Number",
		"signature":          "Signature",
		"language":           "Language",
		"changePassword":     "Change Password",
		"newPassword":        "New Password",
		"confirmPassword":    "Confirm New Password",
		"passwordsDoNotMatch": "Passwords do not match.",
		"passwordUpdated":    "Password updated successfully.",
		"error":              "Something went wrong. Please try again.",
		"search":             "Search...",
	},
	core.Gujarati: {
		"appName":            "રસીદ બુક",
		"dashboard":          "ડેશબોર્ડ",
		"receipts":           "રસીદો",
		"expenses":           "ખર્ચ",
		"profile":            "પ્રોફાઇલ",
		"logout":             "લૉગઆઉટ",
		"save":               "સાચવો",
		"total":              "કુલ",
		"name":               "નામ",
		"date":               "તારીખ",
		"amount":             "રકમ",
		"operation":          "ઓપરેશન",
		"credit":             "સરવાળો",
		"debit":              "બાદબાકી",
		"actions":            "ક્રિયાઓ",
		"createdBy":          "યશ કે પાઠક દ્વારા બનાવેલ છે",
		"digitalCopyNotice":  "આ ફક્ત ડિજિટલ સોફ્ટ કોપી છે",
		"loginTitle":         "એડમિન લોગિન",
		"username":           "વપરાશકર્તા નામ",
		"password":           "પાસવર્ડ",
		"login":              "લોગિન કરો",
		"invalidCredentials": "અમાન્ય વપરાશકર્તા નામ અથવા પાસવર્ડ",
		"welcome":            "સ્વાગત છે",
		"totalReceipts":      "કુલ રસીદો",
		"totalAmount":        "એકત્રિત કુલ રકમ",
		"recentActivity":     "તાજેતરની પ્રવૃત્તિ",
		"receiptManagement":  "રસીદ સંચાલન",
		"createReceipt":      "રસીદ બનાવો",
		"receiptNumber":      "રસીદ નં.",
		"receiptList":        "રસીદ યાદી",
		"exportAllToExcel":   "બધી એક્સેલમાં નિકાસ કરો",
		"exportToPdf":        "PDF માં નિકાસ કરો",
		"expenseCalculator":  "ખર્ચ કેલ્ક્યુલેટર",
		"addExpense":         "ખર્ચ ઉમેરો",
		"expenseList":        "ખર્ચ યાદી",
		"runningTotal":       "ચાલુ કુલ",
		"adminProfile":       "એડમિન પ્રોફાઇલ",
		"fullName":           "પૂરું નામ",
		"blockNumber":        "બ્લોક/ફ્લેટ નંબર",
		"signature":          "સહી",
		"language":           "ભાષા",
		"changePassword":     "પાસવર્ડ બદલો",
		"newPassword":        "નવો પાસવર્ડ",
		"confirmPassword":    "નવો પાસવર્ડ ખાતરી કરો",
		"passwordsDoNotMatch": "પાસવર્ડ મેળ ખાતા નથી.",
		"passwordUpdated":    "પાસવર્ડ સફળતાપૂર્વક અપડેટ થયો.",
		"error":              "કંઈક ખોટું થયું. કૃપા કરીને ફરી પ્રયાસ કરો.",
		"search":             "શોધો...",
	},
	core.Hindi: {
		"appName":            "रसीद बुक",
		"dashboard":          "डैशबोर्ड",
		"receipts":           "रसीदें",
		"expenses":           "खर्च",
		"profile":            "प्रोफ़ाइल",
		"logout":             "लॉगआउट",
		"save":               "सहेजें",
		"total":              "कुल",
		"name":               "नाम",
		"date":               "तारीख",
		"amount":             "राशि",
		"operation":          "ऑपरेशन",
		"credit":             "जोड़",
		"debit":              "घटा",
		"actions":            "कार्रवाई",
		"createdBy":          "यश के पाठक द्वारा बनाया गया",
		"digitalCopyNotice":  "यह केवल एक डिजिटल सॉफ्ट कॉपी है",
		"loginTitle":         "एडमिन लॉगइन",
		"username":           "उपयोगकर्ता नाम",
		"password":           "पासवर्ड",
		"login":              "लॉग इन करें",
		"invalidCredentials": "अमान्य उपयोगकर्ता नाम या पासवर्ड",
		"welcome":            "स्वागत है",
		"totalReceipts":      "कुल रसीदें",
		"totalAmount":        "कुल एकत्रित राशि",
		"recentActivity":     "हाल की गतिविधि",
		"receiptManagement":  "रसीद प्रबंधन",
		"createReceipt":      "रसीद बनाएं",
		"receiptNumber":      "रसीद संख्या",
		"receiptList":        "रसीद सूची",
		"exportAllToExcel":   "सभी को एक्सेल में निर्यात करें",
		"exportToPdf":        "पीडीएफ में निर्यात करें",
		"expenseCalculator":  "व्यय कैलकुलेटर",
		"addExpense":         "व्यय जोड़ें",
		"expenseList":        "व्यय सूची",
		"runningTotal":       "चालू कुल",
		"adminProfile":       "एडमिन प्रोफ़ाइल",
		"fullName":           "पूरा नाम",
		"blockNumber":        "ब्लॉक/फ्लैट नंबर",
		"signature":          "हस्ताक्षर",
		"language":           "भाषा",
		"changePassword":     "पासवर्ड बदलें",
		"newPassword":        "नया पासवर्ड",
		"confirmPassword":    "नए पासवर्ड की पुष्टि करें",
		"passwordsDoNotMatch": "पासवर्ड मेल नहीं खाते।",
		"passwordUpdated":    "पासवर्ड सफलतापूर्वक अपडेट किया गया।",
		"error":              "कुछ गलत हो गया। कृपया पुनः प्रयास करें।",
		"search":             "खोजें...",
	},
}

// T looks up a label for the given language, falling back to English and
// finally to the key itself so a missing entry never renders as blank.
func T(lang core.Language, key string) string {
	if m, ok := translations[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[core.English][key]; ok {
		return v
	}
	return key
}

// SocietyFor returns the letterhead details for the given language.
func SocietyFor(lang core.Language) Society {
	if s, ok := societies[lang]; ok {
		return s
	}
	return societies[core.English]
}
