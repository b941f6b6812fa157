// messages.go contains user-facing message templates.

package telegram

// General messages.
const (
	msgWelcome        = "🌙 مرحبًا بك في البوت الإسلامي!\nاختر أحد الخيارات:"
	msgInternalError  = "❌ حدث خطأ. حاول مرة أخرى لاحقًا."
	msgCannotProcess  = "❌ تعذر تنفيذ هذا الإجراء."
	msgUnknownMessage = "استخدم /start لعرض القائمة الرئيسية."
)

// Quran messages.
const (
	msgQuranMenu          = "🌙 القرآن الكريم - اختر أحد الخيارات:"
	msgAskSurahNumber     = "📖 الرجاء إدخال رقم السورة (1-114):"
	msgInvalidSurahNumber = "❌ الرجاء إدخال رقم صحيح بين 1 و114."
	msgQuranLoadFailed    = "❌ حدث خطأ أثناء جلب الآية."
	msgNoAudio            = "❌ لا يوجد تلاوة صوتية لهذه الآية."
)

// Hadith messages.
const (
	msgHadithMenu       = "📚 اختر مصدر الحديث:"
	msgHadithLoadFailed = "❌ حدث خطأ أثناء جلب الحديث."
	msgHadithEmptyBook  = "❌ لا توجد أحاديث في هذا الكتاب."
)

// Athkar messages.
const (
	msgAthkarMenu       = "📿 اختر نوع الأذكار:"
	msgAthkarLoadFailed = "❌ فشل تحميل الأذكار."
	msgAthkarEmpty      = "❌ لا توجد أذكار متاحة."
)

// Prayer time messages.
const (
	msgPrayerLoadFailed = "❌ تعذر جلب أوقات الصلاة."
	msgAskLocation      = "📍 أرسل موقعك أو اكتب الإحداثيات بهذا الشكل: 24.7136, 46.6753"
	msgInvalidLocation  = "❌ إحداثيات غير صالحة. مثال: 24.7136, 46.6753"
	msgLocationSaved    = "✅ تم حفظ موقعك."
)

// Favorites messages.
const (
	msgFavSaved      = "✅ تم الحفظ في المفضلة."
	msgFavSaveFailed = "❌ فشل الحفظ."
	msgFavEmpty      = "⭐ لا توجد عناصر في المفضلة بعد."
	msgFavLoadFailed = "❌ تعذر تحميل المفضلة."
)

// Complaint messages.
const (
	msgAskComplaint       = "📝 اكتب شكواك أو اقتراحك:"
	msgComplaintSaved     = "✅ تم استلام شكواك، وسيتم الرد عليك قريبًا."
	msgComplaintFailed    = "❌ تعذر حفظ الشكوى. حاول لاحقًا."
	msgNoOpenComplaints   = "✅ لا توجد شكاوى مفتوحة."
	msgAskComplaintReply  = "✍️ اكتب ردك على الشكوى:"
	msgComplaintReplySent = "✅ تم إرسال الرد وإغلاق الشكوى."
	msgComplaintReplyFail = "❌ تعذر إرسال الرد."
)

// Settings messages.
const (
	msgSettingsFailed  = "❌ تعذر تحميل الإعدادات."
	msgRecitersFailed  = "❌ تعذر تحميل قائمة القراء."
	msgReciterSaved    = "✅ تم اختيار القارئ."
	msgNotifyEnabled   = "🔔 تم تفعيل الإشعارات."
	msgNotifyDisabled  = "🔕 تم إيقاف الإشعارات."
	msgSettingChanged  = "✅ تم حفظ الإعداد."
	msgSettingSaveFail = "❌ تعذر حفظ الإعداد."
)

// Admin and broadcast messages.
const (
	msgAdminOnly        = "❌ هذا الخيار مخصص للمشرف فقط."
	msgOwnerOnly        = "❌ فقط مالك البوت يمكنه تنفيذ هذا الإجراء."
	msgAdminMenu        = "🧑‍💼 لوحة المشرف:"
	msgAskAdminID       = "🆔 أرسل معرف المستخدم الرقمي لإضافته كمشرف:"
	msgInvalidAdminID   = "❌ يرجى إدخال رقم ID صالح فقط."
	msgAdminAdded       = "✅ تم إضافة المشرف بنجاح."
	msgAdminAddFailed   = "❌ هذا المستخدم غير موجود في البوت أو لم يضغط /start بعد."
	msgAdminRemoved     = "✅ تم إزالة المشرف."
	msgAdminRemoveFail  = "❌ فشل في إزالة المشرف."
	msgCannotRemoveSelf = "❌ لا يمكنك إزالة نفسك كمالك للبوت."
	msgStatsFailed      = "❌ تعذر تحميل الإحصائيات."

	msgAskBroadcast       = "📝 أرسل الآن الرسالة التي تريد إرسالها لجميع المستخدمين:"
	msgBroadcastEmpty     = "❌ الرسالة فارغة."
	msgBroadcastSending   = "📨 جاري إرسال الرسالة..."
	msgBroadcastNoPending = "❌ لا توجد رسالة محفوظة."
	msgBroadcastCanceled  = "🔙 تم إلغاء الإرسال."
)

// Button labels.
const (
	btnHome          = "🏠 الرئيسية"
	btnBack          = "🔙 عودة"
	btnPrev          = "◀️ السابق"
	btnNext          = "▶️ التالي"
	btnMore          = "⬇️ متابعة القراءة"
	btnSaveFav       = "⭐ إضافة للمفضلة"
	btnListen        = "🎧 استماع"
	btnRandomAyah    = "🕋 آية عشوائية"
	btnBrowseQuran   = "📖 تصفح السور"
	btnChooseReciter = "🎧 اختيار القارئ"
	btnNotifyToggle  = "🔔 الإشعارات"
	btnSetLocation   = "📍 تحديث الموقع"
	btnRefresh       = "🔄 تحديث"

	btnMenuPrayer   = "🕌 أوقات الصلاة"
	btnMenuQuran    = "📖 القرآن الكريم"
	btnMenuAthkar   = "📿 الأذكار"
	btnMenuHadith   = "📜 الحديث"
	btnMenuFav      = "⭐ المفضلة"
	btnMenuComplain = "📝 الشكاوى"
	btnMenuSettings = "⚙️ الإعدادات"
	btnMenuAdmin    = "🧑‍💼 المشرف"

	btnAdminStats      = "📊 الإحصائيات"
	btnAdminBroadcast  = "📢 إرسال رسالة جماعية"
	btnAdminAdd        = "➕ إضافة مشرف"
	btnAdminList       = "👥 عرض المشرفين"
	btnAdminComplaints = "📨 الشكاوى المفتوحة"
	btnConfirmSend     = "✅ تأكيد الإرسال"
	btnCancel          = "🔙 إلغاء"
	btnReply           = "✍️ رد"
)
