package session

const (
	msgAskButtonText    = "🔰 أدخل نص الزر (سيظهر للمستخدم):"
	msgAskButtonID      = "أدخل معرف الزر (id باللغة الإنجليزية، بدون مسافات):"
	msgAskButtonKind    = "نوع الزر؟ اكتب: submenu / request_info / content / contact_admin"
	msgAskSubmenuItems  = "أرسل عناصر الفرعية بالصيغة id|text|type ثم 'done' عند الانتهاء."
	msgAskRequestPrompt = "أدخل نص الطلب الذي سيشاهده المستخدم:"
	msgAskContentText   = "أدخل نص المحتوى (HTML مسموح):"
	msgAskContentImage  = "أدخل رابط الصورة أو اكتب 'no' للتخطي:"
	msgAskItemPromptFmt = "أدخل نص الطلب للمستخدم للعنصر %s:"
	msgAskDelete        = "🗑 أرسل معرف الزر (id) أو نصه لحذفه:"
	msgAskRate          = "أرسل سعر الصرف الآن (مثال: 15000):"
	msgAskGridColumns   = "أرسل عدد الأعمدة للشبكة (مثال: 2):"
	msgAskAddAdmin      = "أرسل ID الأدمن الجديد (رقم):"
	msgAskRemoveAdmin   = "أرسل ID الأدمن للحذف:"
	msgAskBroadcast     = "✏️ أرسل نص البث (HTML مسموح):"
	msgAskDescription   = "أرسل نص الوصف الذي تريد إضافته/تعديله للزر الرئيسي (سيظهر تحت الصورة):"
	msgAskImageURL      = "أرسل رابط الصورة (URL) ليتم حفظه كصورة للزر الرئيسي:"
	msgAskImageUpload   = "الآن أرسل صورة (Photo) لرفعها وتخزين file_id كصورة للزر الرئيسي:"
	msgAskRequestInfo   = "سيتم تحويل الزر الرئيسي إلى زر يطلب معلومات من المستخدم. أرسل الآن نص الطلب (سيشاهده المستخدم)."
	msgAskMore          = "✏️ أرسل نص السؤال/الطلب الإضافي للمستخدم:"

	msgAddedContact     = "✅ تم إضافة زر تواصل مع الأدمن."
	msgAddedSubmenu     = "✅ تم إضافة الزر مع العناصر الفرعية."
	msgAddedRequestInfo = "✅ تم إضافة زر request_info."
	msgAddedContent     = "✅ تم إضافة زر المحتوى."
	msgItemAdded        = "تم إضافة العنصر الفرعي. أرسل عنصر آخر أو 'done'."
	msgItemSaved        = "تم حفظ العنصر الفرعي."
	msgDeletedFmt       = "✅ تم حذف %s"
	msgRateSavedFmt     = "✅ تم حفظ سعر الصرف: %s ل.س لكل $1"
	msgRateNoticeFmt    = "🔁 تم تحديث سعر الصرف إلى %s ل.س لكل $1"
	msgColumnsSavedFmt  = "✅ تم تحديث أعمدة الشبكة إلى: %d"
	msgAdminAddedFmt    = "✅ تم إضافة الأدمن %d"
	msgAdminRemovedFmt  = "✅ تم حذف الأدمن %d"
	msgBroadcastFmt     = "✅ تم إرسال البث إلى %d مستخدم."
	msgDescriptionFmt   = "✅ تم إضافة/تعديل الوصف للنقطة الرئيسية (%s)."
	msgImageURLFmt      = "✅ تم إضافة/تحديث صورة الزر الرئيسي (%s)."
	msgImageUploadFmt   = "✅ تم رفع الصورة وحفظها كصورة للزر (%s)."
	msgConverted        = "✅ تم تحويل الزر الرئيسي إلى طلب معلومات مع النص المحدد."
	msgAskMoreSent      = "تم إرسال الطلب الإضافي للمستخدم."
	msgAskMoreFailed    = "⚠️ تم حفظ الطلب الإضافي لكن تعذر إرساله للمستخدم."
	msgAskMoreToUserFmt = "✏️ من الأدمن: %s\n\nالرجاء الرد هنا."

	msgTextRequired   = "أرسل نصاً فقط. ألغيت العملية."
	msgUnknownKind    = "نوع غير معروف. ألغيت العملية."
	msgItemKind       = "نوع غير معروف للعنصر الفرعي، استخدم submenu / request_info / content / contact_admin"
	msgItemFormat     = "خطأ في الصيغة، استخدم id|text|type"
	msgBadID          = "⚠️ المعرف غير صالح: بدون مسافات أو | وبطول 32 حرفاً إنجليزياً كحد أقصى. ألغيت العملية."
	msgItemBadID      = "⚠️ معرف العنصر غير صالح: بدون مسافات وبطول 32 حرفاً إنجليزياً كحد أقصى، أرسل عنصراً آخر."
	msgDuplicateID    = "⚠️ هذا المعرف مستخدم مسبقاً. ألغيت العملية."
	msgItemDuplicate  = "⚠️ هذا المعرف مستخدم مسبقاً، أرسل عنصراً بمعرف آخر."
	msgDeleteNotFound = "لم أجد هذا المعرف."
	msgBadRate        = "قيمة غير صحيحة. أرسل رقم مثل: 15000"
	msgBadColumns     = "أدخل رقمًا صحيحًا للأعمدة."
	msgBadAdminID     = "ID غير صالح."
	msgAlreadyAdmin   = "هذا المستخدم أدمن بالفعل."
	msgAdminNotFound  = "لم أجد هذا الأدمن في السجل."
	msgNodeNotFound   = "لم أجد الزر الرئيسي."
	msgPhotoRequired  = "أرسل صورة (Photo) لرفعها كصورة الزر."
	msgOrderNotFound  = "لم أجد الطلب."
	msgSessionFailed  = "حدث خطأ خلال الجلسة. تم إلغاؤها."
)
