package language

// topics are ordered tech, work, love to match the Topic constants.
var entries = []entry{
	{
		tag: Japanese, name: "日本語", category: "社会風刺", placeholder: "それ",
		topics: [3]string{"テクノロジー風刺", "仕事風刺", "恋愛風刺"},
		templates: Templates{
			Short: []string{
				"%sは単なる口実である。",
				"%sは齟齬を露わにする。",
				"%sは記章に過ぎない。",
				"%sは責任を希釈する。",
			},
			Long: []string{
				"%sは約束を膨らませ、中身を痩せさせる。",
				"%sは責任の所在を曖昧にする安易な方便である。",
				"%sを唱えるほど決断は遅れ、費用だけが積み上がる。",
				"%sは希望の衣をまとった締切である。",
			},
		},
	},
	{
		tag: English, name: "English", category: "Social satire", placeholder: "it",
		topics: [3]string{"Tech satire", "Work satire", "Love satire"},
		templates: Templates{
			Short: []string{
				"%s is an excuse.",
				"%s exposes the gap.",
				"%s is merely a badge.",
				"%s thins responsibility.",
			},
			Long: []string{
				"%s inflates promises while starving substance.",
				"%s is a substitute for certainty that obscures accountability.",
				"%s delays decisions while costs accumulate.",
				"%s is a deadline disguised as hope.",
			},
		},
	},
	{
		tag: ChineseSimplified, name: "简体中文", category: "社会讽刺", placeholder: "它",
		topics: [3]string{"科技讽刺", "职场讽刺", "爱情讽刺"},
		templates: Templates{
			Short: []string{
				"%s只是借口。",
				"%s暴露了落差。",
				"%s不过是一个标记。",
				"%s稀释了责任。",
			},
			Long: []string{
				"%s只会吹大承诺，稀释实质。",
				"%s不过是廉价安慰，顺带模糊责任。",
				"%s让决策迟缓，成本却在递增。",
				"%s是披着希望外衣的最后期限。",
			},
		},
	},
	{
		tag: ChineseTraditional, name: "繁體中文", category: "社會諷刺", placeholder: "它",
		topics: [3]string{"科技諷刺", "職場諷刺", "愛情諷刺"},
		templates: Templates{
			Short: []string{
				"%s只是藉口。",
				"%s揭示了落差。",
				"%s不過是一枚標記。",
				"%s稀釋了責任。",
			},
			Long: []string{
				"%s只會誇大承諾，掏空實質。",
				"%s不過是廉價的撫慰，還把責任弄得模糊。",
				"%s拖慢抉擇，成本卻節節上升。",
				"%s是披著希望外衣的最後期限。",
			},
		},
	},
	{
		tag: Spanish, name: "Español", category: "Sátira social", placeholder: "eso",
		topics: [3]string{"Sátira tecnológica", "Sátira laboral", "Sátira amorosa"},
		templates: Templates{
			Short: []string{
				"%s es una excusa.",
				"%s deja al descubierto la brecha.",
				"%s no es más que una insignia.",
				"%s diluye la responsabilidad.",
			},
			Long: []string{
				"%s infla promesas y adelgaza el fondo.",
				"%s no es más que un calmante que difumina la responsabilidad.",
				"%s retrasa la decisión mientras el coste crece.",
				"%s es un plazo disfrazado de esperanza.",
			},
		},
	},
	{
		tag: French, name: "Français", category: "Satire sociale", placeholder: "cela",
		topics: [3]string{"Satire technologique", "Satire du travail", "Satire amoureuse"},
		templates: Templates{
			Short: []string{
				"%s est une excuse.",
				"%s met l’écart à nu.",
				"%s n’est qu’un insigne.",
				"%s dilue la responsabilité.",
			},
			Long: []string{
				"%s gonfle les promesses et affaiblit le fond.",
				"%s n’est qu’un palliatif qui brouille la responsabilité.",
				"%s retarde la décision tandis que le coût grimpe.",
				"%s est une échéance travestie en espoir.",
			},
		},
	},
	{
		tag: Portuguese, name: "Português", category: "Sátira social", placeholder: "isso",
		topics: [3]string{"Sátira tecnológica", "Sátira de trabalho", "Sátira de amor"},
		templates: Templates{
			Short: []string{
				"%s é um pretexto.",
				"%s expõe a distância.",
				"%s é só um emblema.",
				"%s dilui a responsabilidade.",
			},
			Long: []string{
				"%s incha promessas e esvazia o conteúdo.",
				"%s é apenas um anestésico que turva a responsabilidade.",
				"%s adia decisões enquanto os custos crescem.",
				"%s é um prazo fantasiado de esperança.",
			},
		},
	},
	{
		tag: German, name: "Deutsch", category: "Gesellschaftssatire", placeholder: "das",
		topics: [3]string{"Technik-Satire", "Arbeits-Satire", "Liebes-Satire"},
		templates: Templates{
			Short: []string{
				"%s ist ein Vorwand.",
				"%s legt die Kluft offen.",
				"%s ist nur ein Abzeichen.",
				"%s verdünnt die Verantwortung.",
			},
			Long: []string{
				"%s bläht Versprechen auf und dünnt den Kern aus.",
				"%s ist ein billiges Beruhigungsmittel, das Verantwortung verwischt.",
				"%s verzögert Entscheidungen, während die Kosten steigen.",
				"%s ist eine Frist im Gewand der Hoffnung.",
			},
		},
	},
	{
		tag: Korean, name: "한국어", category: "사회 풍자", placeholder: "그것",
		topics: [3]string{"기술 풍자", "직장 풍자", "연애 풍자"},
		templates: Templates{
			Short: []string{
				"%s는 변명에 불과하다.",
				"%s는 간극을 드러낸다.",
				"%s는 그저 표식일 뿐이다.",
				"%s는 책임을 희석한다.",
			},
			Long: []string{
				"%s는 약속만 부풀리고 실질을 소모한다.",
				"%s는 책임을 흐리는 값싼 진정제다.",
				"%s는 결정을 지연시키고 비용만 키운다.",
				"%s는 희망을 걸친 마감일이다.",
			},
		},
	},
	{
		tag: Hindi, name: "हिन्दी", category: "सामाजिक व्यंग्य", placeholder: "यह",
		topics: [3]string{"टेक व्यंग्य", "काम पर व्यंग्य", "प्रेम व्यंग्य"},
		templates: Templates{
			Short: []string{
				"%s महज़ एक बहाना है।",
				"%s खाई को उजागर करता है।",
				"%s बस एक तमगा है।",
				"%s ज़िम्मेदारी को पतला करता है।",
			},
			Long: []string{
				"%s वादों को फुलाता है और सार को खोखला करता है।",
				"%s ज़िम्मेदारी को धुंधला करने वाली सस्ती तसल्ली है।",
				"%s फ़ैसले टालता है, जबकि लागत बढ़ती जाती है।",
				"%s उम्मीद का लिबास ओढ़े एक समय-सीमा है।",
			},
		},
	},
	{
		tag: Indonesian, name: "Bahasa Indonesia", category: "Satir sosial", placeholder: "itu",
		topics: [3]string{"Satir teknologi", "Satir pekerjaan", "Satir cinta"},
		templates: Templates{
			Short: []string{
				"%s hanyalah alasan.",
				"%s menyingkap kesenjangan.",
				"%s sekadar lencana.",
				"%s mengencerkan tanggung jawab.",
			},
			Long: []string{
				"%s membesar-besarkan janji dan mengosongkan substansi.",
				"%s hanyalah penenang murah yang mengaburkan tanggung jawab.",
				"%s menunda keputusan sementara biaya membengkak.",
				"%s adalah tenggat yang menyaru sebagai harapan.",
			},
		},
	},
	{
		tag: Turkish, name: "Türkçe", category: "Toplumsal hiciv", placeholder: "bu",
		topics: [3]string{"Teknoloji hicvi", "İş hicvi", "Aşk hicvi"},
		templates: Templates{
			Short: []string{
				"%s bir mazerettir.",
				"%s uçurumu açığa çıkarır.",
				"%s sadece bir nişandır.",
				"%s sorumluluğu seyreltir.",
			},
			Long: []string{
				"%s vaatleri şişirir, özü zayıflatır.",
				"%s sorumluluğu bulanıklaştıran ucuz bir tesellidir.",
				"%s kararları erteler, maliyetleri artırır.",
				"%s umut kılığına girmiş bir son tarihtir.",
			},
		},
	},
	{
		tag: Russian, name: "Русский", category: "Социальная сатира", placeholder: "это",
		topics: [3]string{"Технологическая сатира", "Сатира о работе", "Сатира о любви"},
		templates: Templates{
			Short: []string{
				"%s — это отговорка.",
				"%s обнажает разрыв.",
				"%s — лишь знак отличия.",
				"%s размывает ответственность.",
			},
			Long: []string{
				"%s раздувает обещания и истощает содержание.",
				"%s — дешёвое успокоительное, размывающее ответственность.",
				"%s тормозит решения, пока растут издержки.",
				"%s — срок, замаскированный под надежду.",
			},
		},
	},
	{
		tag: Bengali, name: "বাংলা", category: "সামাজিক ব্যঙ্গ", placeholder: "ওটা",
		topics: [3]string{"প্রযুক্তি ব্যঙ্গ", "কর্মক্ষেত্র ব্যঙ্গ", "ভালোবাসার ব্যঙ্গ"},
		templates: Templates{
			Short: []string{
				"%s নিছক অজুহাত।",
				"%s ফারাক উন্মোচন করে।",
				"%s কেবল একটি প্রতীক।",
				"%s দায় হালকা করে।",
			},
			Long: []string{
				"%s প্রতিশ্রুতি ফোলায় এবং মর্মশূন্য করে।",
				"%s দায় ঝাপসা করা সস্তা সান্ত্বনা।",
				"%s সিদ্ধান্ত পিছিয়ে দেয়, ব্যয় বাড়ায়।",
				"%s আশার মুখোশ পরা সময়সীমা।",
			},
		},
	},
	{
		tag: Swahili, name: "Kiswahili", category: "Udhihaka wa kijamii", placeholder: "hicho",
		topics: [3]string{"Udhihaka wa teknolojia", "Udhihaka wa kazi", "Udhihaka wa mapenzi"},
		templates: Templates{
			Short: []string{
				"%s ni kisingizio.",
				"%s hufichua pengo.",
				"%s ni beji tu.",
				"%s hupunguza uwajibikaji.",
			},
			Long: []string{
				"%s huongeza matumaini na hupunguza kiini.",
				"%s ni dawa ya bei rahisi inayoficha uwajibikaji.",
				"%s huchelewesha maamuzi huku gharama zikiongezeka.",
				"%s ni mwisho uliojifanya tumaini.",
			},
		},
	},
	{
		tag: Arabic, name: "العربية", category: "سخرية اجتماعية", placeholder: "ذلك",
		topics: [3]string{"سخرية تقنية", "سخرية العمل", "سخرية الحب"},
		templates: Templates{
			Short: []string{
				"%s ذريعة لا غير.",
				"%s يفضح الفجوة.",
				"%s مجرد شارة.",
				"%s يميّع المسؤولية.",
			},
			Long: []string{
				"%s ينفخ الوعود ويفرغ المضمون.",
				"%s مسكّن رخيص يطمس المسؤولية.",
				"%s يؤخر الحسم فيما تتزايد التكلفة.",
				"%s موعد نهائي متنكر بزي الأمل.",
			},
		},
	},
	{
		tag: Marathi, name: "मराठी", category: "सामाजिक उपहास", placeholder: "ते",
		topics: [3]string{"तंत्रज्ञानावर उपहास", "कामावर उपहास", "प्रेमावर उपहास"},
		templates: Templates{
			Short: []string{
				"%s हा फक्त बहाणा आहे।",
				"%s दरी उघड करते।",
				"%s ही फक्त खूण आहे।",
				"%s जबाबदारी पातळ करते।",
			},
			Long: []string{
				"%s अपेक्षा फुगवते आणि आशय क्षीण करते।",
				"%s जबाबदारी धूसर करणारा स्वस्त दिलासा आहे।",
				"%s निर्णय लांबवते आणि खर्च वाढवते।",
				"%s आशेच्या आवरणातील अंतिम मुदत आहे।",
			},
		},
	},
	{
		tag: Telugu, name: "తెలుగు", category: "సామాజిక వ్యంగ్యం", placeholder: "అది",
		topics: [3]string{"సాంకేతిక వ్యంగ్యం", "పని పై వ్యంగ్యం", "ప్రేమ వ్యంగ్యం"},
		templates: Templates{
			Short: []string{
				"%s కేవలం ఒక సాకు.",
				"%s అంతరాన్ని బహిర్గతం చేస్తుంది.",
				"%s కేవలం ఒక గుర్తు.",
				"%s బాధ్యతను పలుచబరుస్తుంది.",
			},
			Long: []string{
				"%s హామీలను ఊదేస్తుంది, సారాన్ని తగ్గిస్తుంది.",
				"%s బాధ్యతను మసకబార్చే చవక ఊరట.",
				"%s నిర్ణయాన్ని ఆలస్యం చేస్తుంది, ఖర్చు మాత్రం పెరుగుతుంది.",
				"%s ఆశ అనే వేషం వేసుకున్న గడువు.",
			},
		},
	},
	{
		tag: Tamil, name: "தமிழ்", category: "சமூக கிண்டல்", placeholder: "அது",
		topics: [3]string{"தொழில்நுட்ப கிண்டல்", "வேலை கிண்டல்", "காதல் கிண்டல்"},
		templates: Templates{
			Short: []string{
				"%s ஒரு சாக்கு மட்டுமே.",
				"%s இடைவெளியை வெளிப்படுத்துகிறது.",
				"%s வெறும் அடையாளம்.",
				"%s பொறுப்பை நீர்த்துப்போகச் செய்கிறது.",
			},
			Long: []string{
				"%s வாக்குறுதியை ஊதிப் பெருக்கி உள்ளடக்கத்தை மெலிதாக்குகிறது.",
				"%s பொறுப்பை மங்கச் செய்யும் மலிவான ஆறுதல்.",
				"%s தீர்மானத்தைத் தள்ளிப்போட, செலவு மட்டும் அதிகரிக்கிறது.",
				"%s நம்பிக்கையின் முகமூடி அணிந்த கடைசி நாள்.",
			},
		},
	},
	{
		tag: Vietnamese, name: "Tiếng Việt", category: "Châm biếm xã hội", placeholder: "điều đó",
		topics: [3]string{"Châm biếm công nghệ", "Châm biếm công việc", "Châm biếm tình yêu"},
		templates: Templates{
			Short: []string{
				"%s chỉ là cái cớ.",
				"%s phơi bày khoảng trống.",
				"%s chỉ là một phù hiệu.",
				"%s làm loãng trách nhiệm.",
			},
			Long: []string{
				"%s phóng đại lời hứa và làm rỗng ruột nội dung.",
				"%s chỉ là liều xoa dịu rẻ tiền làm mờ trách nhiệm.",
				"%s trì hoãn quyết định trong khi chi phí phình to.",
				"%s là thời hạn khoác áo hy vọng.",
			},
		},
	},
}
