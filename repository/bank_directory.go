// repository/bank_directory.go
package repository

import "github.com/hanoitek/splitqr/models"

// bankDirectory is the NAPAS member table used for transfer routing.
// Order is load-bearing: substring fallback in the resolver returns the
// first row that matches, so rows must never be reordered, only appended.
// BINs are the 6-digit acquirer identifiers registered with NAPAS.
var bankDirectory = []models.Bank{
	{Code: "VCB", ShortName: "Vietcombank", Name: "Ngân hàng TMCP Ngoại Thương Việt Nam", BIN: "970436"},
	{Code: "ICB", ShortName: "VietinBank", Name: "Ngân hàng TMCP Công Thương Việt Nam", BIN: "970415"},
	{Code: "BIDV", ShortName: "BIDV", Name: "Ngân hàng TMCP Đầu Tư và Phát Triển Việt Nam", BIN: "970418"},
	{Code: "VBA", ShortName: "Agribank", Name: "Ngân hàng Nông nghiệp và Phát triển Nông thôn Việt Nam", BIN: "970405"},
	{Code: "TCB", ShortName: "Techcombank", Name: "Ngân hàng TMCP Kỹ Thương Việt Nam", BIN: "970407"},
	{Code: "MB", ShortName: "MBBank", Name: "Ngân hàng TMCP Quân Đội", BIN: "970422"},
	{Code: "VPB", ShortName: "VPBank", Name: "Ngân hàng TMCP Việt Nam Thịnh Vượng", BIN: "970432"},
	{Code: "ACB", ShortName: "ACB", Name: "Ngân hàng TMCP Á Châu", BIN: "970416"},
	{Code: "STB", ShortName: "Sacombank", Name: "Ngân hàng TMCP Sài Gòn Thương Tín", BIN: "970403"},
	{Code: "TPB", ShortName: "TPBank", Name: "Ngân hàng TMCP Tiên Phong", BIN: "970423"},
	{Code: "HDB", ShortName: "HDBank", Name: "Ngân hàng TMCP Phát triển Thành phố Hồ Chí Minh", BIN: "970437"},
	{Code: "VIB", ShortName: "VIB", Name: "Ngân hàng TMCP Quốc tế Việt Nam", BIN: "970441"},
	{Code: "SHB", ShortName: "SHB", Name: "Ngân hàng TMCP Sài Gòn - Hà Nội", BIN: "970443"},
	{Code: "EIB", ShortName: "Eximbank", Name: "Ngân hàng TMCP Xuất Nhập khẩu Việt Nam", BIN: "970431"},
	{Code: "MSB", ShortName: "MSB", Name: "Ngân hàng TMCP Hàng Hải", BIN: "970426"},
	{Code: "OCB", ShortName: "OCB", Name: "Ngân hàng TMCP Phương Đông", BIN: "970448"},
	{Code: "SCB", ShortName: "SCB", Name: "Ngân hàng TMCP Sài Gòn", BIN: "970429"},
	{Code: "SEAB", ShortName: "SeABank", Name: "Ngân hàng TMCP Đông Nam Á", BIN: "970440"},
	{Code: "VAB", ShortName: "VietABank", Name: "Ngân hàng TMCP Việt Á", BIN: "970427"},
	{Code: "NAB", ShortName: "NamABank", Name: "Ngân hàng TMCP Nam Á", BIN: "970428"},
	{Code: "PGB", ShortName: "PGBank", Name: "Ngân hàng TMCP Xăng dầu Petrolimex", BIN: "970430"},
	{Code: "ABB", ShortName: "ABBANK", Name: "Ngân hàng TMCP An Bình", BIN: "970425"},
	{Code: "BAB", ShortName: "BacABank", Name: "Ngân hàng TMCP Bắc Á", BIN: "970409"},
	{Code: "NCB", ShortName: "NCB", Name: "Ngân hàng TMCP Quốc Dân", BIN: "970419"},
	{Code: "VCCB", ShortName: "BVBank", Name: "Ngân hàng TMCP Bản Việt", BIN: "970454"},
	{Code: "SGICB", ShortName: "SaigonBank", Name: "Ngân hàng TMCP Sài Gòn Công Thương", BIN: "970400"},
	{Code: "BVB", ShortName: "BaoVietBank", Name: "Ngân hàng TMCP Bảo Việt", BIN: "970438"},
	{Code: "VRB", ShortName: "VRB", Name: "Ngân hàng Liên doanh Việt - Nga", BIN: "970421"},
	{Code: "LPB", ShortName: "LPBank", Name: "Ngân hàng TMCP Lộc Phát Việt Nam", BIN: "970449"},
	{Code: "KLB", ShortName: "KienLongBank", Name: "Ngân hàng TMCP Kiên Long", BIN: "970452"},
	{Code: "IVB", ShortName: "Indovina", Name: "Ngân hàng TNHH Indovina", BIN: "970434"},
	{Code: "VIETBANK", ShortName: "VietBank", Name: "Ngân hàng TMCP Việt Nam Thương Tín", BIN: "970433"},
	{Code: "DOB", ShortName: "DongABank", Name: "Ngân hàng TMCP Đông Á", BIN: "970406"},
	{Code: "GPB", ShortName: "GPBank", Name: "Ngân hàng Thương mại TNHH MTV Dầu Khí Toàn Cầu", BIN: "970408"},
	{Code: "OCEANBANK", ShortName: "Oceanbank", Name: "Ngân hàng Thương mại TNHH MTV Đại Dương", BIN: "970414"},
	{Code: "CBB", ShortName: "CBBank", Name: "Ngân hàng Thương mại TNHH MTV Xây dựng Việt Nam", BIN: "970444"},
	{Code: "PVCB", ShortName: "PVcomBank", Name: "Ngân hàng TMCP Đại Chúng Việt Nam", BIN: "970412"},
	{Code: "PBVN", ShortName: "PublicBank", Name: "Ngân hàng TNHH MTV Public Việt Nam", BIN: "970439"},
	{Code: "SHBVN", ShortName: "ShinhanBank", Name: "Ngân hàng TNHH MTV Shinhan Việt Nam", BIN: "970424"},
	{Code: "WVN", ShortName: "Woori", Name: "Ngân hàng TNHH MTV Woori Việt Nam", BIN: "970457"},
	{Code: "UOB", ShortName: "UnitedOverseas", Name: "Ngân hàng United Overseas Bank Việt Nam", BIN: "970458"},
	{Code: "SCVN", ShortName: "StandardChartered", Name: "Ngân hàng TNHH MTV Standard Chartered Việt Nam", BIN: "970410"},
	{Code: "CIMB", ShortName: "CIMB", Name: "Ngân hàng TNHH MTV CIMB Việt Nam", BIN: "422589"},
	{Code: "HSBC", ShortName: "HSBC", Name: "Ngân hàng TNHH MTV HSBC Việt Nam", BIN: "458761"},
	{Code: "HLBVN", ShortName: "HongLeong", Name: "Ngân hàng TNHH MTV Hong Leong Việt Nam", BIN: "970442"},
	{Code: "IBKHN", ShortName: "IBKHaNoi", Name: "Ngân hàng Công nghiệp Hàn Quốc - Chi nhánh Hà Nội", BIN: "970455"},
	{Code: "IBKHCM", ShortName: "IBKHoChiMinh", Name: "Ngân hàng Công nghiệp Hàn Quốc - Chi nhánh Thành phố Hồ Chí Minh", BIN: "970456"},
	{Code: "KBHN", ShortName: "KookminHaNoi", Name: "Ngân hàng Kookmin - Chi nhánh Hà Nội", BIN: "970462"},
	{Code: "KBHCM", ShortName: "KookminHoChiMinh", Name: "Ngân hàng Kookmin - Chi nhánh Thành phố Hồ Chí Minh", BIN: "970463"},
	{Code: "KEBHANAHN", ShortName: "KEBHanaHaNoi", Name: "Ngân hàng KEB Hana - Chi nhánh Hà Nội", BIN: "970467"},
	{Code: "KEBHANAHCM", ShortName: "KEBHanaHoChiMinh", Name: "Ngân hàng KEB Hana - Chi nhánh Thành phố Hồ Chí Minh", BIN: "970466"},
	{Code: "COOPBANK", ShortName: "COOPBANK", Name: "Ngân hàng Hợp tác xã Việt Nam", BIN: "970446"},
	{Code: "CAKE", ShortName: "CAKE", Name: "Ngân hàng số CAKE by VPBank", BIN: "546034"},
	{Code: "UBANK", ShortName: "Ubank", Name: "Ngân hàng số Ubank by VPBank", BIN: "546035"},
	{Code: "TIMO", ShortName: "Timo", Name: "Ngân hàng số Timo by Bản Việt Bank", BIN: "963388"},
	{Code: "VTLMONEY", ShortName: "ViettelMoney", Name: "Tổng Công ty Dịch vụ số Viettel - Viettel Money", BIN: "971005"},
	{Code: "VNPTMONEY", ShortName: "VNPTMoney", Name: "Dịch vụ thanh toán di động VNPT Money", BIN: "971011"},
	{Code: "CITIBANK", ShortName: "Citibank", Name: "Ngân hàng Citibank, N.A. - Chi nhánh Hà Nội", BIN: "533948"},
	{Code: "KBANK", ShortName: "KBank", Name: "Ngân hàng Đại chúng TNHH Kasikornbank", BIN: "668888"},
	{Code: "DBS", ShortName: "DBSBank", Name: "DBS Bank Ltd - Chi nhánh Thành phố Hồ Chí Minh", BIN: "796500"},
	{Code: "NHB", ShortName: "NongHyup", Name: "Ngân hàng Nonghyup - Chi nhánh Hà Nội", BIN: "801011"},
	{Code: "MAFC", ShortName: "MAFC", Name: "Công ty Tài chính TNHH MB Shinsei", BIN: "977777"},
}
