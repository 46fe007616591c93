package utils

import "time"

const (
	// Field length limits for split-bill records
	MaxActivityNameLength = 160
	MaxParticipantName    = 120
	MaxDescriptionLength  = 200

	// Precision for monetary calculations
	MoneyPrecision = 100.0
	// MoneyTolerance is the largest accepted gap between a submitted summary
	// total and the recomputed expense sum.
	MoneyTolerance = 0.01

	// Request body caps
	MaxBodyBytes     = 1 << 20  // 1 MiB
	MaxScanBodyBytes = 10 << 20 // 10 MiB

	// Timeout for the external bill-scan service
	ScanTimeout = 30 * time.Second

	// Login lockout
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute

	// Token lifetimes
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Validation messages for split-bill payloads. The client app is Indonesian;
// these strings are part of its contract.
const (
	ErrInvalidPayload          = "Payload tidak valid"
	ErrActivityNameRequired    = "Nama aktivitas wajib diisi"
	ErrActivityNameTooLong     = "Nama aktivitas terlalu panjang"
	ErrOccurredAtInvalid       = "Tanggal aktivitas tidak valid"
	ErrParticipantsInvalid     = "Daftar peserta tidak valid"
	ErrParticipantInvalid      = "Peserta tidak valid"
	ErrParticipantDataRequired = "Data peserta wajib diisi dengan benar"
	ErrExpensesInvalid         = "Daftar pengeluaran tidak valid"
	ErrExpenseInvalid          = "Pengeluaran tidak valid"
	ErrAdditionalListInvalid   = "Daftar additional expense tidak valid"
	ErrAdditionalInvalid       = "Additional expense tidak valid"
	ErrExpenseParticipantsList = "Daftar peserta pada pengeluaran tidak valid"
	ErrExpenseParticipantID    = "ID peserta pada pengeluaran tidak valid"
	ErrPaymentMethodListValid  = "Daftar metode pembayaran tidak valid"
	ErrPaymentMethodIDInvalid  = "ID metode pembayaran tidak valid"
	ErrSnapshotListInvalid     = "Daftar snapshot metode pembayaran tidak valid"
	ErrSnapshotInvalid         = "Snapshot metode pembayaran tidak valid"
	ErrSnapshotDataInvalid     = "Data snapshot metode pembayaran tidak valid"
	ErrSnapshotAccountNumber   = "Snapshot bank transfer wajib memiliki accountNumber"
	ErrSnapshotPhoneNumber     = "Snapshot e-wallet wajib memiliki phoneNumber"
	ErrSummaryInvalid          = "Ringkasan split bill tidak valid"
	ErrSummaryTotalInvalid     = "Total ringkasan tidak valid"
	ErrPerParticipantInvalid   = "Ringkasan per peserta tidak valid"
	ErrSummaryEntryInvalid     = "Entry ringkasan peserta tidak valid"
	ErrSummaryDataInvalid      = "Data ringkasan peserta tidak valid"
	ErrOwedItemsInvalid        = "Daftar tagihan peserta tidak valid"
	ErrOwedItemInvalid         = "Tagihan peserta tidak valid"
	ErrOwedItemDataInvalid     = "Detail tagihan peserta tidak valid"
	ErrSettlementsInvalid      = "Daftar pelunasan tidak valid"
	ErrSettlementInvalid       = "Pelunasan tidak valid"
	ErrSettlementDataInvalid   = "Data pelunasan tidak valid"

	// Settlement-consistency messages
	ErrUnknownParticipantRef = "Referensi peserta tidak dikenal"
	ErrSummaryTotalMismatch  = "Total ringkasan tidak sesuai dengan jumlah pengeluaran"

	// Record lookup
	ErrRecordNotFound = "Split bill tidak ditemukan"

	// Participant directory
	ErrParticipantNameRequired = "Nama peserta wajib diisi"
	ErrParticipantExists       = "Peserta dengan nama ini sudah ada"
	ErrParticipantNotFound     = "Peserta tidak ditemukan"

	// Banners
	ErrBannersNotArray   = "Invalid payload: 'banners' must be an array"
	ErrBannerFields      = "Validation error: Image and route are required for all banners"
	ErrBannerIDRequired  = "Banner ID is required"
	ErrBannerNotFound    = "Banner not found"
	MsgBannersSaved      = "Semua banner berhasil disimpan"
	MsgBannerDeleted     = "Banner berhasil dihapus"
	MsgBannerImageField  = "Image URL harus diisi"
	MsgBannerRouteField  = "Route harus diisi"

	// Wallets
	ErrWalletFieldsRequired = "Nama dan metode pembayaran wajib diisi"
	ErrWalletMethodInvalid  = "Metode pembayaran tidak valid"
	ErrWalletAccountNumber  = "Metode bank transfer wajib memiliki accountNumber"
	ErrWalletPhoneNumber    = "Metode e-wallet wajib memiliki phoneNumber"

	// Auth
	ErrTokenRequired       = "Access token required"
	ErrTokenInvalid        = "Invalid token"
	ErrTokenExpired        = "Token expired"
	ErrInvalidCredentials  = "Invalid email or password"
	ErrEmailPasswordNeeded = "Email and password are required"
	ErrNotVerified         = "Email not verified. Please check your email to verify your account."
	ErrNotAdmin            = "Anda tidak memiliki akses admin. Halaman ini hanya untuk administrator."
	ErrAdminOnly           = "Admin access required"
	MsgLoginSuccessful     = "Login successful"
	MsgLogoutSuccessful    = "Logout successful"

	// Reviews
	MsgReviewSaved = "Review berhasil disimpan"

	// Generic
	ErrInvalidRequest = "Invalid request"
	ErrInternal       = "An error occurred processing your request"
)
