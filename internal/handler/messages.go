package handler

const (
	msgWelcome       = "<b>🎮 أهلاً بك</b>\nاختر الخدمة من القائمة."
	msgBotStopped    = "🚫 البوت متوقف حالياً."
	msgUseButtons    = "⚠️ الرجاء استخدام الأزرار فقط."
	msgLinksBlocked  = "🚫 الروابط غير مسموحة. أعد الإرسال بدون رابط."
	msgOrderReceived = "✅ طلبك قيد المراجعة سيتم إعلامك بالنتيجة قريبًا."
	msgError         = "حدث خطأ. حاول مرة أخرى لاحقاً."
	msgAdminsOnly    = "⛔ للأدمن فقط"
	msgNoPanelAccess = "⛔ ليس لديك صلاحية الوصول للوحة الأدمن."
	msgUnknownButton = "⚠️ الزر غير موجود"
	msgUnknownAction = "حدث خطأ أو الزر غير معروف."
	msgCurrencyFmt   = "تم تغيير العرض إلى: %s"
	msgChoose        = "اختر:"

	msgWriteToAdmin  = "✉️ أرسل رسالتك الآن (نص أو صورة):"
	msgMessageSent   = "✅ تم إرسال الرسالة."
	msgFromUserFmt   = "📩 رسالة من %s (ID:%d)"
	msgFromUserText  = "📩 رسالة من %s (ID:%d):\n\n%s"
	msgNewOrderFmt   = "📥 طلب جديد\n👤 %s (ID:%d)\n📦 %s\nOrderID: %s\n"
	msgOrderTextFmt  = "📝 %s"
	msgOrderPhotoFmt = "🖼 صورة (file_id:%s)"

	msgPanel         = "لوحة الأدمن — اختر:"
	msgManageButtons = "إدارة الأزرار:"
	msgManageAdmins  = "إدارة المشرفين:"
	msgChooseLayout  = "اختر شكل عرض الأزرار:"
	msgLayoutSetFmt  = "✅ تم تعيين شكل العرض: %s"
	msgStatusFmt     = "🔁 تم تغيير حالة البوت إلى: %s"
	msgChooseMain    = "اختر الزر الرئيسي الذي تريد تعديله:"
	msgEditMainFmt   = "تحكم بالزر الرئيسي: %s"
	msgButtonMissing = "❌ الزر غير موجود."
	msgNoSubs        = "لا توجد عناصر فرعية لهذا الزر."
	msgSubsFmt       = "عناصر فرعية لزر %s:"
	msgButtonsHeader = "قائمة الأزرار الحالية:"
	msgStatsFmt      = "📊 إحصائيات:\n👥 المستخدمين: %d\n📦 الطلبات: %d\n⏳ قيد المراجعة: %d\n✅ مقبولة: %d\n❌ مرفوضة: %d\n✏️ بحاجة لمعلومات: %d\n⭐ الأكثر استخدامًا: %s"
	msgStatsNone     = "لا يوجد"

	msgNoOrders        = "لا توجد طلبات حالياً."
	msgOrdersHeader    = "قائمة الطلبات:"
	msgOrderNotFound   = "❌ لم أجد الطلب."
	msgOrderClosed     = "⚠️ هذا الطلب مغلق بالفعل."
	msgOrderViewFmt    = "📦 %s\n👤 %s (%d)\n📌 %s\n📝 %s\nالحالة: %s"
	msgOrderPhoto      = "صورة"
	msgApproved        = "تمت الموافقة."
	msgRejected        = "تم الرفض."
	msgApprovedUserFmt = "✅ تمت الموافقة على طلبك (OrderID:%s). سيتم إتمامه قريبًا."
	msgRejectedUserFmt = "❌ تم رفض طلبك (OrderID:%s). تواصل مع الأدمن."
)

// Button labels
const (
	lblToggleCurrency = "🔄 تبديل العملة"
	lblHome           = "🏠 الرئيسية"
	lblBack           = "🏠 رجوع"
	lblSendToAdmin    = "✉️ إرسال رسالة للأدمن"

	lblManageButtons = "🧭 إدارة الأزرار"
	lblOrders        = "📦 الطلبات"
	lblBroadcast     = "📢 بث"
	lblSetRate       = "💱 تعيين سعر الصرف"
	lblLayout        = "🔲 شكل الأزرار"
	lblManageAdmins  = "👥 إدارة المشرفين"
	lblStats         = "📊 إحصائيات"
	lblToggleBot     = "⏯ تشغيل/إيقاف البوت"

	lblAddButton   = "➕ إضافة زر"
	lblEditMain    = "✏️ تعديل زر رئيسي"
	lblDeleteBtn   = "🗑 حذف زر"
	lblShowButtons = "🔁 عرض القوائم"

	lblVertical   = "عمودي (vertical)"
	lblHorizontal = "أفقي (horizontal)"
	lblGrid       = "شبكة (grid) - تحديد الأعمدة"

	lblAddAdmin    = "➕ إضافة أدمن"
	lblRemoveAdmin = "🗑 حذف أدمن"

	lblEditText       = "✏️ إضافة/تعديل وصف النص أسفل الصورة"
	lblEditImageURL   = "🖼 إضافة/تعديل صورة (رابط)"
	lblEditImageUp    = "📤 رفع صورة جديدة (أرسلها الآن)"
	lblEditToRequest  = "📥 تحويل الزر إلى طلب معلومات (request_info)"
	lblEditShowSubs   = "🔁 عرض العناصر الفرعية"
	lblOrderApprove   = "✅ موافقة"
	lblOrderReject    = "❌ رفض"
	lblOrderAskMore   = "✏️ طلب تعديل"
	lblOrderView      = "👁 عرض الطلب"
)
