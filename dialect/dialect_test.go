package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProfileAddressing verifies the structural addressing differences
// between the two dialects: padding, index bases, and path roots.
func TestProfileAddressing(t *testing.T) {
	x32 := ProfileFor(FamilyX32)
	xair := ProfileFor(FamilyXAir)
	require.NotNil(t, x32)
	require.NotNil(t, xair)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"x32 channel", x32.ChannelPath(1), "/ch/01"},
		{"x32 channel high", x32.ChannelPath(32), "/ch/32"},
		{"xair channel", xair.ChannelPath(7), "/ch/07"},
		{"x32 bus zero-based padded", x32.BusPath(1), "/bus/00"},
		{"x32 bus high", x32.BusPath(16), "/bus/15"},
		{"xair bus one-based unpadded", xair.BusPath(1), "/bus/1"},
		{"xair bus high", xair.BusPath(6), "/bus/6"},
		{"x32 main", x32.MainPath(), "/main/st"},
		{"xair main", xair.MainPath(), "/lr"},
		{"x32 fx switch", x32.FXSwitchAddr(3), "/fx/03/on"},
		{"xair fx switch", xair.FXSwitchAddr(3), "/fx/3/insert"},
		{"x32 aux in", x32.AuxInPath(2), "/auxin/02"},
		{"x32 matrix", x32.MatrixPath(6), "/mtx/06"},
		{"x32 send level", x32.SendLevelAddr(1, 1), "/ch/01/mix/00/level"},
		{"xair send level", xair.SendLevelAddr(1, 1), "/ch/01/mix/1/level"},
		{"x32 scene name", x32.SceneNameAddr(1), "/-snap/00/name"},
		{"x32 store verb", x32.SceneStoreAddr(), "/-snap/store"},
		{"xair store verb", xair.SceneStoreAddr(), "/-snap/save"},
		{"xair low cut", xair.LowCutAddr(4), "/ch/04/preamp/hpf"},
		{"xair low cut switch", xair.LowCutOnAddr(4), "/ch/04/preamp/hpon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

// TestSceneWireIndex verifies the asymmetric scene index bases: human scene
// 1 is wire 0 on the X32 and wire 1 on the X-Air.
func TestSceneWireIndex(t *testing.T) {
	assert.Equal(t, int32(0), ProfileFor(FamilyX32).SceneWireIndex(1))
	assert.Equal(t, int32(1), ProfileFor(FamilyXAir).SceneWireIndex(1))
	assert.Equal(t, int32(99), ProfileFor(FamilyX32).SceneWireIndex(100))
	assert.Equal(t, int32(64), ProfileFor(FamilyXAir).SceneWireIndex(64))
}

func TestFXSendLevelAddr(t *testing.T) {
	xair := ProfileFor(FamilyXAir)
	addr, ok := xair.FXSendLevelAddr(2, 1)
	require.True(t, ok)
	assert.Equal(t, "/ch/02/mix/7/level", addr)

	_, ok = ProfileFor(FamilyX32).FXSendLevelAddr(2, 1)
	assert.False(t, ok)
}

// TestValidation verifies 1-based human index bounds per family.
func TestValidation(t *testing.T) {
	x32 := ProfileFor(FamilyX32)
	xair := ProfileFor(FamilyXAir)

	assert.NoError(t, x32.ValidateChannel(32))
	assert.Error(t, x32.ValidateChannel(33))
	assert.Error(t, x32.ValidateChannel(0))
	assert.NoError(t, xair.ValidateChannel(16))
	assert.Error(t, xair.ValidateChannel(17))

	assert.NoError(t, x32.ValidateBus(16))
	assert.Error(t, xair.ValidateBus(7))
	assert.NoError(t, x32.ValidateScene(100))
	assert.Error(t, x32.ValidateScene(101))
	assert.NoError(t, xair.ValidateScene(64))
	assert.Error(t, xair.ValidateScene(65))
	assert.Error(t, xair.ValidateFXSlot(5))
	assert.NoError(t, x32.ValidateFXSlot(8))
	assert.Error(t, x32.ValidateEQBand(5))
}

func TestCapabilities(t *testing.T) {
	x32 := ProfileFor(FamilyX32)
	xair := ProfileFor(FamilyXAir)

	assert.True(t, x32.HasAuxIns())
	assert.True(t, x32.HasMatrices())
	assert.True(t, x32.HasPerSceneNames())
	assert.False(t, x32.HasLowCut())
	assert.False(t, x32.HasFXSends())

	assert.False(t, xair.HasAuxIns())
	assert.False(t, xair.HasMatrices())
	assert.False(t, xair.HasPerSceneNames())
	assert.True(t, xair.HasLowCut())
	assert.True(t, xair.HasFXSends())
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "X32", FamilyX32.String())
	assert.Equal(t, "X-Air", FamilyXAir.String())
	assert.Equal(t, "Unknown", FamilyUnknown.String())
	assert.Equal(t, "Family(9)", Family(9).String())
}

func TestProfileForUnknown(t *testing.T) {
	assert.Nil(t, ProfileFor(FamilyUnknown))
}
