package vectors

// Reference pairs one vectored operation with its published hex encoded
// byte sequence and the domain it was generated over. The domain covers
// Start <= x < Start+Size-1 against a tree of Size leaves.
type Reference struct {
	Op    Op
	Start uint64
	Size  uint64
	Hex   string
}

// End returns the exclusive end of the reference's generation domain.
func (r Reference) End() uint64 {
	return r.Start + r.Size - 1
}

// Check regenerates the vector and confirms byte for byte agreement with
// the published encoding.
func (r Reference) Check() error {
	raw, err := DecodeHex(r.Hex)
	if err != nil {
		return err
	}
	return Verify(r.Op, r.Start, r.End(), r.Size, raw)
}

// PublishedReferences returns the reference vectors published by the
// original implementation, one per operation, all generated against a
// tree of 255 leaves. They pin every structural query bit for bit.
func PublishedReferences() []Reference {
	return []Reference{
		{Op: OpRoot, Start: 1, Size: 255, Hex: refHexRoot},
		{Op: OpLevel, Start: 0, Size: 255, Hex: refHexLevel},
		{Op: OpNodeWidth, Start: 1, Size: 255, Hex: refHexNodeWidth},
		{Op: OpLeft, Start: 0, Size: 255, Hex: refHexLeft},
		{Op: OpParentStep, Start: 0, Size: 255, Hex: refHexParentStep},
		{Op: OpRight, Start: 0, Size: 255, Hex: refHexRight},
		{Op: OpParent, Start: 0, Size: 255, Hex: refHexParent},
		{Op: OpSibling, Start: 0, Size: 255, Hex: refHexSibling},
		{Op: OpDirPath, Start: 0, Size: 255, Hex: refHexDirpath},
		{Op: OpCoPath, Start: 0, Size: 255, Hex: refHexCopath},
	}
}

// Published encodings, uppercase hex. Data, not logic: these byte
// sequences are the cross implementation contract and must never be
// regenerated from this codebase alone.
const (
	refHexRoot = "FFFE00010303070707070F0F0F0F0F0F0F0F1F1F1F1F1F1F1F1F1F1F1F1F1F1F1F1F3F3F3F3F3F3F3F3F3F3F3F3F3F3F" +
		"3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F3F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F" +
		"7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7F7FFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"
	refHexLevel = "FFFE00010002000100030001000200010004000100020001000300010002000100050001000200010003000100020001" +
		"000400010002000100030001000200010006000100020001000300010002000100040001000200010003000100020001" +
		"000500010002000100030001000200010004000100020001000300010002000100070001000200010003000100020001" +
		"000400010002000100030001000200010005000100020001000300010002000100040001000200010003000100020001" +
		"000600010002000100030001000200010004000100020001000300010002000100050001000200010003000100020001" +
		"00040001000200010003000100020001"
	refHexNodeWidth = "FFFE01030507090B0D0F11131517191B1D1F21232527292B2D2F31333537393B3D3F41434547494B4D4F51535557595B" +
		"5D5F61636567696B6D6F71737577797B7D7F81838587898B8D8F91939597999B9D9FA1A3A5A7A9ABADAFB1B3B5B7B9BB" +
		"BDBFC1C3C5C7C9CBCDCFD1D3D5D7D9DBDDDFE1E3E5E7E9EBEDEFF1F3F5F7F9FBFDFF01030507090B0D0F11131517191B" +
		"1D1F21232527292B2D2F31333537393B3D3F41434547494B4D4F51535557595B5D5F61636567696B6D6F71737577797B" +
		"7D7F81838587898B8D8F91939597999B9D9FA1A3A5A7A9ABADAFB1B3B5B7B9BBBDBFC1C3C5C7C9CBCDCFD1D3D5D7D9DB" +
		"DDDFE1E3E5E7E9EBEDEFF1F3F5F7F9FB"
	refHexLeft = "FFFE000002010404060308080A090C0C0E07101012111414161318181A191C1C1E0F202022212424262328282A292C2C" +
		"2E27303032313434363338383A393C3C3E1F404042414444464348484A494C4C4E47505052515454565358585A595C5C" +
		"5E4F606062616464666368686A696C6C6E67707072717474767378787A797C7C7E3F808082818484868388888A898C8C" +
		"8E87909092919494969398989A999C9C9E8FA0A0A2A1A4A4A6A3A8A8AAA9ACACAEA7B0B0B2B1B4B4B6B3B8B8BAB9BCBC" +
		"BE9FC0C0C2C1C4C4C6C3C8C8CAC9CCCCCEC7D0D0D2D1D4D4D6D3D8D8DAD9DCDCDECFE0E0E2E1E4E4E6E3E8E8EAE9ECEC" +
		"EEE7F0F0F2F1F4F4F6F3F8F8FAF9FCFC"
	refHexParentStep = "FFFE010301070503050F090B09070D0B0D1F111311171513150F191B19171D1B1D3F212321272523252F292B29272D2B" +
		"2D1F313331373533352F393B39373D3B3D7F414341474543454F494B49474D4B4D5F515351575553554F595B59575D5B" +
		"5D3F616361676563656F696B69676D6B6D5F717371777573756F797B79777D7B7DFF818381878583858F898B89878D8B" +
		"8D9F919391979593958F999B99979D9B9DBFA1A3A1A7A5A3A5AFA9ABA9A7ADABAD9FB1B3B1B7B5B3B5AFB9BBB9B7BDBB" +
		"BD7FC1C3C1C7C5C3C5CFC9CBC9C7CDCBCDDFD1D3D1D7D5D3D5CFD9DBD9D7DDDBDDBFE1E3E1E7E5E3E5EFE9EBE9E7EDEB" +
		"EDDFF1F3F1F7F5F3F5EFF9FBF9F7FDFB"
	refHexRight = "FFFE000202050406060B080A0A0D0C0E0E17101212151416161B181A1A1D1C1E1E2F202222252426262B282A2A2D2C2E" +
		"2E37303232353436363B383A3A3D3C3E3E5F404242454446464B484A4A4D4C4E4E57505252555456565B585A5A5D5C5E" +
		"5E6F606262656466666B686A6A6D6C6E6E77707272757476767B787A7A7D7C7E7EBF808282858486868B888A8A8D8C8E" +
		"8E97909292959496969B989A9A9D9C9E9EAFA0A2A2A5A4A6A6ABA8AAAAADACAEAEB7B0B2B2B5B4B6B6BBB8BABABDBCBE" +
		"BEDFC0C2C2C5C4C6C6CBC8CACACDCCCECED7D0D2D2D5D4D6D6DBD8DADADDDCDEDEEFE0E2E2E5E4E6E6EBE8EAEAEDECEE" +
		"EEF7F0F2F2F5F4F6F6FBF8FAFAFDFCFE"
	refHexParent = "FFFE010301070503050F090B09070D0B0D1F111311171513150F191B19171D1B1D3F212321272523252F292B29272D2B" +
		"2D1F313331373533352F393B39373D3B3D7F414341474543454F494B49474D4B4D5F515351575553554F595B59575D5B" +
		"5D3F616361676563656F696B69676D6B6D5F717371777573756F797B79777D7B7DFF818381878583858F898B89878D8B" +
		"8D9F919391979593958F999B99979D9B9DBFA1A3A1A7A5A3A5AFA9ABA9A7ADABAD9FB1B3B1B7B5B3B5AFB9BBB9B7BDBB" +
		"BD7FC1C3C1C7C5C3C5CFC9CBC9C7CDCBCDDFD1D3D1D7D5D3D5CFD9DBD9D7DDDBDDBFE1E3E1E7E5E3E5EFE9EBE9E7EDEB" +
		"EDDFF1F3F1F7F5F3F5EFF9FBF9F7FDFB"
	refHexSibling = "FFFE0205000B060104170A0D08030E090C2F1215101B161114071A1D18131E191C5F2225202B262124372A2D28232E29" +
		"2C0F3235303B363134273A3D38333E393CBF4245404B464144574A4D48434E494C6F5255505B565154475A5D58535E59" +
		"5C1F6265606B666164776A6D68636E696C4F7275707B767174677A7D78737E797C7F8285808B868184978A8D88838E89" +
		"8CAF9295909B969194879A9D98939E999CDFA2A5A0ABA6A1A4B7AAADA8A3AEA9AC8FB2B5B0BBB6B1B4A7BABDB8B3BEB9" +
		"BC3FC2C5C0CBC6C1C4D7CACDC8C3CEC9CCEFD2D5D0DBD6D1D4C7DADDD8D3DED9DC9FE2E5E0EBE6E1E4F7EAEDE8E3EEE9" +
		"ECCFF2F5F0FBF6F1F4E7FAFDF8F3FEF9"
	refHexDirpath = "FF0808000103070F1F3F7F07070103070F1F3F7F0808020103070F1F3F7F060603070F1F3F7F0808040503070F1F3F7F" +
		"07070503070F1F3F7F0808060503070F1F3F7F0505070F1F3F7F080808090B070F1F3F7F0707090B070F1F3F7F08080A" +
		"090B070F1F3F7F06060B070F1F3F7F08080C0D0B070F1F3F7F07070D0B070F1F3F7F08080E0D0B070F1F3F7F04040F1F" +
		"3F7F0808101113170F1F3F7F07071113170F1F3F7F0808121113170F1F3F7F060613170F1F3F7F0808141513170F1F3F" +
		"7F07071513170F1F3F7F0808161513170F1F3F7F0505170F1F3F7F080818191B170F1F3F7F0707191B170F1F3F7F0808" +
		"1A191B170F1F3F7F06061B170F1F3F7F08081C1D1B170F1F3F7F07071D1B170F1F3F7F08081E1D1B170F1F3F7F03031F" +
		"3F7F0808202123272F1F3F7F07072123272F1F3F7F0808222123272F1F3F7F060623272F1F3F7F0808242523272F1F3F" +
		"7F07072523272F1F3F7F0808262523272F1F3F7F0505272F1F3F7F080828292B272F1F3F7F0707292B272F1F3F7F0808" +
		"2A292B272F1F3F7F06062B272F1F3F7F08082C2D2B272F1F3F7F07072D2B272F1F3F7F08082E2D2B272F1F3F7F04042F" +
		"1F3F7F0808303133372F1F3F7F07073133372F1F3F7F0808323133372F1F3F7F060633372F1F3F7F0808343533372F1F" +
		"3F7F07073533372F1F3F7F0808363533372F1F3F7F0505372F1F3F7F080838393B372F1F3F7F0707393B372F1F3F7F08" +
		"083A393B372F1F3F7F06063B372F1F3F7F08083C3D3B372F1F3F7F07073D3B372F1F3F7F08083E3D3B372F1F3F7F0202" +
		"3F7F0808404143474F5F3F7F07074143474F5F3F7F0808424143474F5F3F7F060643474F5F3F7F0808444543474F5F3F" +
		"7F07074543474F5F3F7F0808464543474F5F3F7F0505474F5F3F7F080848494B474F5F3F7F0707494B474F5F3F7F0808" +
		"4A494B474F5F3F7F06064B474F5F3F7F08084C4D4B474F5F3F7F07074D4B474F5F3F7F08084E4D4B474F5F3F7F04044F" +
		"5F3F7F0808505153574F5F3F7F07075153574F5F3F7F0808525153574F5F3F7F060653574F5F3F7F0808545553574F5F" +
		"3F7F07075553574F5F3F7F0808565553574F5F3F7F0505574F5F3F7F080858595B574F5F3F7F0707595B574F5F3F7F08" +
		"085A595B574F5F3F7F06065B574F5F3F7F08085C5D5B574F5F3F7F07075D5B574F5F3F7F08085E5D5B574F5F3F7F0303" +
		"5F3F7F0808606163676F5F3F7F07076163676F5F3F7F0808626163676F5F3F7F060663676F5F3F7F0808646563676F5F" +
		"3F7F07076563676F5F3F7F0808666563676F5F3F7F0505676F5F3F7F080868696B676F5F3F7F0707696B676F5F3F7F08" +
		"086A696B676F5F3F7F06066B676F5F3F7F08086C6D6B676F5F3F7F07076D6B676F5F3F7F08086E6D6B676F5F3F7F0404" +
		"6F5F3F7F0808707173776F5F3F7F07077173776F5F3F7F0808727173776F5F3F7F060673776F5F3F7F0808747573776F" +
		"5F3F7F07077573776F5F3F7F0808767573776F5F3F7F0505776F5F3F7F080878797B776F5F3F7F0707797B776F5F3F7F" +
		"08087A797B776F5F3F7F06067B776F5F3F7F08087C7D7B776F5F3F7F07077D7B776F5F3F7F08087E7D7B776F5F3F7F01" +
		"017F0808808183878F9FBF7F07078183878F9FBF7F0808828183878F9FBF7F060683878F9FBF7F0808848583878F9FBF" +
		"7F07078583878F9FBF7F0808868583878F9FBF7F0505878F9FBF7F080888898B878F9FBF7F0707898B878F9FBF7F0808" +
		"8A898B878F9FBF7F06068B878F9FBF7F08088C8D8B878F9FBF7F07078D8B878F9FBF7F08088E8D8B878F9FBF7F04048F" +
		"9FBF7F0808909193978F9FBF7F07079193978F9FBF7F0808929193978F9FBF7F060693978F9FBF7F0808949593978F9F" +
		"BF7F07079593978F9FBF7F0808969593978F9FBF7F0505978F9FBF7F080898999B978F9FBF7F0707999B978F9FBF7F08" +
		"089A999B978F9FBF7F06069B978F9FBF7F08089C9D9B978F9FBF7F07079D9B978F9FBF7F08089E9D9B978F9FBF7F0303" +
		"9FBF7F0808A0A1A3A7AF9FBF7F0707A1A3A7AF9FBF7F0808A2A1A3A7AF9FBF7F0606A3A7AF9FBF7F0808A4A5A3A7AF9F" +
		"BF7F0707A5A3A7AF9FBF7F0808A6A5A3A7AF9FBF7F0505A7AF9FBF7F0808A8A9ABA7AF9FBF7F0707A9ABA7AF9FBF7F08" +
		"08AAA9ABA7AF9FBF7F0606ABA7AF9FBF7F0808ACADABA7AF9FBF7F0707ADABA7AF9FBF7F0808AEADABA7AF9FBF7F0404" +
		"AF9FBF7F0808B0B1B3B7AF9FBF7F0707B1B3B7AF9FBF7F0808B2B1B3B7AF9FBF7F0606B3B7AF9FBF7F0808B4B5B3B7AF" +
		"9FBF7F0707B5B3B7AF9FBF7F0808B6B5B3B7AF9FBF7F0505B7AF9FBF7F0808B8B9BBB7AF9FBF7F0707B9BBB7AF9FBF7F" +
		"0808BAB9BBB7AF9FBF7F0606BBB7AF9FBF7F0808BCBDBBB7AF9FBF7F0707BDBBB7AF9FBF7F0808BEBDBBB7AF9FBF7F02" +
		"02BF7F0808C0C1C3C7CFDFBF7F0707C1C3C7CFDFBF7F0808C2C1C3C7CFDFBF7F0606C3C7CFDFBF7F0808C4C5C3C7CFDF" +
		"BF7F0707C5C3C7CFDFBF7F0808C6C5C3C7CFDFBF7F0505C7CFDFBF7F0808C8C9CBC7CFDFBF7F0707C9CBC7CFDFBF7F08" +
		"08CAC9CBC7CFDFBF7F0606CBC7CFDFBF7F0808CCCDCBC7CFDFBF7F0707CDCBC7CFDFBF7F0808CECDCBC7CFDFBF7F0404" +
		"CFDFBF7F0808D0D1D3D7CFDFBF7F0707D1D3D7CFDFBF7F0808D2D1D3D7CFDFBF7F0606D3D7CFDFBF7F0808D4D5D3D7CF" +
		"DFBF7F0707D5D3D7CFDFBF7F0808D6D5D3D7CFDFBF7F0505D7CFDFBF7F0808D8D9DBD7CFDFBF7F0707D9DBD7CFDFBF7F" +
		"0808DAD9DBD7CFDFBF7F0606DBD7CFDFBF7F0808DCDDDBD7CFDFBF7F0707DDDBD7CFDFBF7F0808DEDDDBD7CFDFBF7F03" +
		"03DFBF7F0808E0E1E3E7EFDFBF7F0707E1E3E7EFDFBF7F0808E2E1E3E7EFDFBF7F0606E3E7EFDFBF7F0808E4E5E3E7EF" +
		"DFBF7F0707E5E3E7EFDFBF7F0808E6E5E3E7EFDFBF7F0505E7EFDFBF7F0808E8E9EBE7EFDFBF7F0707E9EBE7EFDFBF7F" +
		"0808EAE9EBE7EFDFBF7F0606EBE7EFDFBF7F0808ECEDEBE7EFDFBF7F0707EDEBE7EFDFBF7F0808EEEDEBE7EFDFBF7F04" +
		"04EFDFBF7F0808F0F1F3F7EFDFBF7F0707F1F3F7EFDFBF7F0808F2F1F3F7EFDFBF7F0606F3F7EFDFBF7F0808F4F5F3F7" +
		"EFDFBF7F0707F5F3F7EFDFBF7F0808F6F5F3F7EFDFBF7F0505F7EFDFBF7F0808F8F9FBF7EFDFBF7F0707F9FBF7EFDFBF" +
		"7F0808FAF9FBF7EFDFBF7F0606FBF7EFDFBF7F0808FCFDFBF7EFDFBF7F0707FDFBF7EFDFBF7F"
	refHexCopath = "FF080802050B172F5FBF7F0707050B172F5FBF7F080800050B172F5FBF7F06060B172F5FBF7F080806010B172F5FBF7F" +
		"0707010B172F5FBF7F080804010B172F5FBF7F0505172F5FBF7F08080A0D03172F5FBF7F07070D03172F5FBF7F080808" +
		"0D03172F5FBF7F060603172F5FBF7F08080E0903172F5FBF7F07070903172F5FBF7F08080C0903172F5FBF7F04042F5F" +
		"BF7F080812151B072F5FBF7F0707151B072F5FBF7F080810151B072F5FBF7F06061B072F5FBF7F080816111B072F5FBF" +
		"7F0707111B072F5FBF7F080814111B072F5FBF7F0505072F5FBF7F08081A1D13072F5FBF7F07071D13072F5FBF7F0808" +
		"181D13072F5FBF7F060613072F5FBF7F08081E1913072F5FBF7F07071913072F5FBF7F08081C1913072F5FBF7F03035F" +
		"BF7F080822252B370F5FBF7F0707252B370F5FBF7F080820252B370F5FBF7F06062B370F5FBF7F080826212B370F5FBF" +
		"7F0707212B370F5FBF7F080824212B370F5FBF7F0505370F5FBF7F08082A2D23370F5FBF7F07072D23370F5FBF7F0808" +
		"282D23370F5FBF7F060623370F5FBF7F08082E2923370F5FBF7F07072923370F5FBF7F08082C2923370F5FBF7F04040F" +
		"5FBF7F080832353B270F5FBF7F0707353B270F5FBF7F080830353B270F5FBF7F06063B270F5FBF7F080836313B270F5F" +
		"BF7F0707313B270F5FBF7F080834313B270F5FBF7F0505270F5FBF7F08083A3D33270F5FBF7F07073D33270F5FBF7F08" +
		"08383D33270F5FBF7F060633270F5FBF7F08083E3933270F5FBF7F07073933270F5FBF7F08083C3933270F5FBF7F0202" +
		"BF7F080842454B576F1FBF7F0707454B576F1FBF7F080840454B576F1FBF7F06064B576F1FBF7F080846414B576F1FBF" +
		"7F0707414B576F1FBF7F080844414B576F1FBF7F0505576F1FBF7F08084A4D43576F1FBF7F07074D43576F1FBF7F0808" +
		"484D43576F1FBF7F060643576F1FBF7F08084E4943576F1FBF7F07074943576F1FBF7F08084C4943576F1FBF7F04046F" +
		"1FBF7F080852555B476F1FBF7F0707555B476F1FBF7F080850555B476F1FBF7F06065B476F1FBF7F080856515B476F1F" +
		"BF7F0707515B476F1FBF7F080854515B476F1FBF7F0505476F1FBF7F08085A5D53476F1FBF7F07075D53476F1FBF7F08" +
		"08585D53476F1FBF7F060653476F1FBF7F08085E5953476F1FBF7F07075953476F1FBF7F08085C5953476F1FBF7F0303" +
		"1FBF7F080862656B774F1FBF7F0707656B774F1FBF7F080860656B774F1FBF7F06066B774F1FBF7F080866616B774F1F" +
		"BF7F0707616B774F1FBF7F080864616B774F1FBF7F0505774F1FBF7F08086A6D63774F1FBF7F07076D63774F1FBF7F08" +
		"08686D63774F1FBF7F060663774F1FBF7F08086E6963774F1FBF7F07076963774F1FBF7F08086C6963774F1FBF7F0404" +
		"4F1FBF7F080872757B674F1FBF7F0707757B674F1FBF7F080870757B674F1FBF7F06067B674F1FBF7F080876717B674F" +
		"1FBF7F0707717B674F1FBF7F080874717B674F1FBF7F0505674F1FBF7F08087A7D73674F1FBF7F07077D73674F1FBF7F" +
		"0808787D73674F1FBF7F060673674F1FBF7F08087E7973674F1FBF7F07077973674F1FBF7F08087C7973674F1FBF7F01" +
		"017F080882858B97AFDF3F7F0707858B97AFDF3F7F080880858B97AFDF3F7F06068B97AFDF3F7F080886818B97AFDF3F" +
		"7F0707818B97AFDF3F7F080884818B97AFDF3F7F050597AFDF3F7F08088A8D8397AFDF3F7F07078D8397AFDF3F7F0808" +
		"888D8397AFDF3F7F06068397AFDF3F7F08088E898397AFDF3F7F0707898397AFDF3F7F08088C898397AFDF3F7F0404AF" +
		"DF3F7F080892959B87AFDF3F7F0707959B87AFDF3F7F080890959B87AFDF3F7F06069B87AFDF3F7F080896919B87AFDF" +
		"3F7F0707919B87AFDF3F7F080894919B87AFDF3F7F050587AFDF3F7F08089A9D9387AFDF3F7F07079D9387AFDF3F7F08" +
		"08989D9387AFDF3F7F06069387AFDF3F7F08089E999387AFDF3F7F0707999387AFDF3F7F08089C999387AFDF3F7F0303" +
		"DF3F7F0808A2A5ABB78FDF3F7F0707A5ABB78FDF3F7F0808A0A5ABB78FDF3F7F0606ABB78FDF3F7F0808A6A1ABB78FDF" +
		"3F7F0707A1ABB78FDF3F7F0808A4A1ABB78FDF3F7F0505B78FDF3F7F0808AAADA3B78FDF3F7F0707ADA3B78FDF3F7F08" +
		"08A8ADA3B78FDF3F7F0606A3B78FDF3F7F0808AEA9A3B78FDF3F7F0707A9A3B78FDF3F7F0808ACA9A3B78FDF3F7F0404" +
		"8FDF3F7F0808B2B5BBA78FDF3F7F0707B5BBA78FDF3F7F0808B0B5BBA78FDF3F7F0606BBA78FDF3F7F0808B6B1BBA78F" +
		"DF3F7F0707B1BBA78FDF3F7F0808B4B1BBA78FDF3F7F0505A78FDF3F7F0808BABDB3A78FDF3F7F0707BDB3A78FDF3F7F" +
		"0808B8BDB3A78FDF3F7F0606B3A78FDF3F7F0808BEB9B3A78FDF3F7F0707B9B3A78FDF3F7F0808BCB9B3A78FDF3F7F02" +
		"023F7F0808C2C5CBD7EF9F3F7F0707C5CBD7EF9F3F7F0808C0C5CBD7EF9F3F7F0606CBD7EF9F3F7F0808C6C1CBD7EF9F" +
		"3F7F0707C1CBD7EF9F3F7F0808C4C1CBD7EF9F3F7F0505D7EF9F3F7F0808CACDC3D7EF9F3F7F0707CDC3D7EF9F3F7F08" +
		"08C8CDC3D7EF9F3F7F0606C3D7EF9F3F7F0808CEC9C3D7EF9F3F7F0707C9C3D7EF9F3F7F0808CCC9C3D7EF9F3F7F0404" +
		"EF9F3F7F0808D2D5DBC7EF9F3F7F0707D5DBC7EF9F3F7F0808D0D5DBC7EF9F3F7F0606DBC7EF9F3F7F0808D6D1DBC7EF" +
		"9F3F7F0707D1DBC7EF9F3F7F0808D4D1DBC7EF9F3F7F0505C7EF9F3F7F0808DADDD3C7EF9F3F7F0707DDD3C7EF9F3F7F" +
		"0808D8DDD3C7EF9F3F7F0606D3C7EF9F3F7F0808DED9D3C7EF9F3F7F0707D9D3C7EF9F3F7F0808DCD9D3C7EF9F3F7F03" +
		"039F3F7F0808E2E5EBF7CF9F3F7F0707E5EBF7CF9F3F7F0808E0E5EBF7CF9F3F7F0606EBF7CF9F3F7F0808E6E1EBF7CF" +
		"9F3F7F0707E1EBF7CF9F3F7F0808E4E1EBF7CF9F3F7F0505F7CF9F3F7F0808EAEDE3F7CF9F3F7F0707EDE3F7CF9F3F7F" +
		"0808E8EDE3F7CF9F3F7F0606E3F7CF9F3F7F0808EEE9E3F7CF9F3F7F0707E9E3F7CF9F3F7F0808ECE9E3F7CF9F3F7F04" +
		"04CF9F3F7F0808F2F5FBE7CF9F3F7F0707F5FBE7CF9F3F7F0808F0F5FBE7CF9F3F7F0606FBE7CF9F3F7F0808F6F1FBE7" +
		"CF9F3F7F0707F1FBE7CF9F3F7F0808F4F1FBE7CF9F3F7F0505E7CF9F3F7F0808FAFDF3E7CF9F3F7F0707FDF3E7CF9F3F" +
		"7F0808F8FDF3E7CF9F3F7F0606F3E7CF9F3F7F0808FEF9F3E7CF9F3F7F0707F9F3E7CF9F3F7F"
)
