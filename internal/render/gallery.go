package render

// galleryTemplate is the tap-through slide deck. Slides for rankings
// that came back empty are skipped, so the deck never shows a blank.
const galleryTemplate = `<!DOCTYPE html>
<html><head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Chat Wrapped {{.Year}}</title>
<link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>🌯</text></svg>">
<script src="https://cdnjs.cloudflare.com/ajax/libs/html2canvas/1.4.1/html2canvas.min.js"></script>
<style>
@import url('https://fonts.googleapis.com/css2?family=Silkscreen&family=Azeret+Mono:wght@400;500;600;700&family=Space+Grotesk:wght@400;500;700&display=swap');

:root {
    --bg: #0a0a12;
    --text: #f0f0f0;
    --muted: #8892a0;
    --green: #4ade80;
    --yellow: #fbbf24;
    --red: #f87171;
    --cyan: #22d3ee;
    --pink: #f472b6;
    --orange: #fb923c;
    --purple: #a78bfa;
    --font-pixel: 'Silkscreen', cursive;
    --font-mono: 'Azeret Mono', monospace;
    --font-body: 'Space Grotesk', sans-serif;
}

* { margin: 0; padding: 0; box-sizing: border-box; -webkit-tap-highlight-color: transparent; }
html, body { height: 100%; overflow: hidden; }
body { font-family: var(--font-body); background: var(--bg); color: var(--text); }

.gallery {
    display: flex;
    height: 100%;
    transition: transform 0.4s cubic-bezier(0.4,0,0.2,1);
}

.slide {
    min-width: 100vw;
    height: 100vh;
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: center;
    padding: 40px 32px 80px;
    text-align: center;
    background: var(--bg);
}

.slide.intro { background: linear-gradient(145deg,#12121f 0%,#1a1a2e 50%,#0f2847 100%); }
.slide.pink-bg { background: linear-gradient(145deg,#12121f 0%,#2d1a3d 100%); }
.slide.purple-bg { background: linear-gradient(145deg,#12121f 0%,#1f1a3d 100%); }
.slide.orange-bg { background: linear-gradient(145deg,#12121f 0%,#2d1f1a 100%); }
.slide.red-bg { background: linear-gradient(145deg,#12121f 0%,#2d1a1a 100%); }
.slide.summary-slide { background: linear-gradient(145deg,#0f2847 0%,#12121f 50%,#1a1a2e 100%); }

.slide h1 { font-family: var(--font-pixel); font-size: 36px; font-weight: 400; line-height: 1.2; margin: 20px 0; }
.slide-label { font-family: var(--font-pixel); font-size: 10px; font-weight: 400; color: var(--green); letter-spacing: 0.5px; margin-bottom: 16px; }
.slide-icon { font-size: 80px; margin-bottom: 16px; }
.slide-text { font-size: 18px; color: var(--muted); margin: 8px 0; }
.subtitle { font-size: 18px; color: var(--muted); margin-top: 8px; }

.big-number { font-family: var(--font-mono); font-size: 80px; font-weight: 500; line-height: 1; letter-spacing: -2px; }
.pct { font-family: var(--font-body); font-size: 48px; }
.huge-name { font-family: var(--font-body); font-size: 32px; font-weight: 600; line-height: 1.25; word-break: break-word; max-width: 90%; margin: 16px 0; }
.personality-type { font-family: var(--font-pixel); font-size: 18px; font-weight: 400; line-height: 1.25; color: var(--purple); margin: 24px 0; text-transform: uppercase; letter-spacing: 0.5px; }
.roast { font-style: italic; color: var(--muted); font-size: 18px; margin-top: 16px; max-width: 400px; }

.green { color: var(--green); }
.yellow { color: var(--yellow); }
.red { color: var(--red); }
.cyan { color: var(--cyan); }
.pink { color: var(--pink); }
.orange { color: var(--orange); }
.purple { color: var(--purple); }

.stat-grid { display: flex; gap: 40px; margin-top: 28px; }
.stat-item { display: flex; flex-direction: column; align-items: center; }
.stat-num { font-family: var(--font-mono); font-size: 24px; font-weight: 600; color: var(--cyan); }
.stat-lbl { font-size: 11px; color: var(--muted); margin-top: 6px; text-transform: uppercase; letter-spacing: 0.5px; }

.rank-list { width: 100%; max-width: 420px; margin-top: 20px; }
.rank-item { display: flex; align-items: center; padding: 14px 0; border-bottom: 1px solid rgba(255,255,255,0.1); gap: 16px; }
.rank-num { font-family: var(--font-mono); font-size: 20px; font-weight: 600; color: var(--green); width: 36px; text-align: center; }
.rank-name { flex: 1; font-size: 16px; text-align: left; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
.rank-count { font-family: var(--font-mono); font-size: 18px; font-weight: 600; color: var(--yellow); }

.badge { display: inline-block; padding: 8px 18px; border-radius: 24px; font-family: var(--font-pixel); font-size: 9px; font-weight: 400; text-transform: uppercase; letter-spacing: 0.3px; margin-top: 20px; border: 2px solid; }
.badge.green { border-color: var(--green); color: var(--green); background: rgba(74,222,128,0.1); }
.badge.yellow { border-color: var(--yellow); color: var(--yellow); background: rgba(251,191,36,0.1); }
.badge.red { border-color: var(--red); color: var(--red); background: rgba(248,113,113,0.1); }
.badge.cyan { border-color: var(--cyan); color: var(--cyan); background: rgba(34,211,238,0.1); }

.emoji-row { font-size: 64px; letter-spacing: 20px; margin: 28px 0; }

.tap-hint { position: absolute; bottom: 60px; font-size: 16px; color: var(--muted); animation: pulse 2s infinite; }
@keyframes pulse { 0%,100% { opacity: 0.4; } 50% { opacity: 1; } }

.slide .slide-label,
.slide .slide-text,
.slide .slide-icon,
.slide .big-number,
.slide .huge-name,
.slide .personality-type,
.slide .roast,
.slide .badge,
.slide .stat-grid,
.slide .rank-list,
.slide .emoji-row,
.slide h1,
.slide .subtitle {
    opacity: 0;
    transform: translateY(20px);
}

.slide.active .slide-label { animation: fadeSlideUp 0.5s ease-out forwards; }
.slide.active .slide-icon { animation: popIn 0.6s cubic-bezier(0.34,1.56,0.64,1) 0.1s forwards; }
.slide.active h1 { animation: fadeSlideUp 0.6s ease-out 0.15s forwards; }
.slide.active .subtitle { animation: fadeSlideUp 0.5s ease-out 0.3s forwards; }
.slide.active .slide-text { animation: fadeSlideUp 0.4s ease-out 0.2s forwards; }
.slide.active .big-number { animation: countReveal 0.7s cubic-bezier(0.34,1.56,0.64,1) 0.3s forwards; }
.slide.active .huge-name { animation: fadeSlideUp 0.6s cubic-bezier(0.22,1,0.36,1) 0.35s forwards; }
.slide.active .personality-type { animation: glitchReveal 0.8s ease-out 0.3s forwards; }
.slide.active .roast { animation: fadeSlideUp 0.5s ease-out 0.6s forwards; }
.slide.active .badge { animation: badgePop 0.5s cubic-bezier(0.34,1.56,0.64,1) 0.7s forwards; }
.slide.active .stat-grid { animation: fadeSlideUp 0.5s ease-out 0.5s forwards; }
.slide.active .rank-list { animation: fadeIn 0.3s ease-out 0.3s forwards; }
.slide.active .rank-item { opacity: 0; animation: rankCascade 0.4s ease-out forwards; }
.slide.active .rank-item:nth-child(1) { animation-delay: 0.35s; }
.slide.active .rank-item:nth-child(2) { animation-delay: 0.45s; }
.slide.active .rank-item:nth-child(3) { animation-delay: 0.55s; }
.slide.active .rank-item:nth-child(4) { animation-delay: 0.65s; }
.slide.active .rank-item:nth-child(5) { animation-delay: 0.75s; }
.slide.active .emoji-row { animation: popIn 0.8s ease-out 0.3s forwards; }
.slide.active .summary-card { animation: cardReveal 0.7s cubic-bezier(0.22,1,0.36,1) 0.2s forwards; }
.slide.active .screenshot-btn { opacity: 0; animation: fadeSlideUp 0.5s ease-out 0.8s forwards; }
.slide.active .share-hint { opacity: 0; animation: fadeSlideUp 0.4s ease-out 1s forwards; }

@keyframes fadeSlideUp {
    from { opacity: 0; transform: translateY(20px); }
    to { opacity: 1; transform: translateY(0); }
}
@keyframes fadeIn {
    from { opacity: 0; }
    to { opacity: 1; }
}
@keyframes popIn {
    0% { opacity: 0; transform: translateY(20px) scale(0.8); }
    70% { transform: translateY(-5px) scale(1.1); }
    100% { opacity: 1; transform: translateY(0) scale(1); }
}
@keyframes countReveal {
    0% { opacity: 0; transform: translateY(30px) scale(0.9); }
    60% { transform: translateY(-8px) scale(1.02); }
    100% { opacity: 1; transform: translateY(0) scale(1); }
}
@keyframes glitchReveal {
    0% { opacity: 0; transform: translateY(20px); filter: blur(8px); }
    40% { opacity: 0.7; transform: translateY(5px) skewX(3deg); filter: blur(2px); }
    70% { opacity: 0.9; transform: translateY(-2px) skewX(-1deg); filter: blur(0); }
    100% { opacity: 1; transform: translateY(0) skewX(0); }
}
@keyframes badgePop {
    0% { opacity: 0; transform: translateY(10px) scale(0.8); }
    70% { transform: translateY(-3px) scale(1.1); }
    100% { opacity: 1; transform: translateY(0) scale(1); }
}
@keyframes rankCascade {
    0% { opacity: 0; transform: translateX(-30px); }
    100% { opacity: 1; transform: translateX(0); }
}
@keyframes cardReveal {
    0% { opacity: 0; transform: translateY(40px) scale(0.95); }
    100% { opacity: 1; transform: translateY(0) scale(1); }
}

.summary-card {
    background: linear-gradient(145deg,#1a1a2e 0%,#0f1a2e 100%);
    border: 2px solid rgba(255,255,255,0.1);
    border-radius: 24px;
    padding: 32px;
    width: 100%;
    max-width: 420px;
    text-align: center;
}
.summary-header { display: flex; align-items: center; justify-content: center; gap: 12px; margin-bottom: 24px; padding-bottom: 16px; border-bottom: 1px solid rgba(255,255,255,0.1); }
.summary-logo { font-size: 28px; }
.summary-title { font-family: var(--font-pixel); font-size: 11px; font-weight: 400; color: var(--text); }
.summary-hero { margin: 24px 0; }
.summary-big-stat { display: flex; flex-direction: column; align-items: center; }
.summary-big-num { font-family: var(--font-mono); font-size: 56px; font-weight: 600; color: var(--green); line-height: 1; letter-spacing: -1px; }
.summary-big-label { font-size: 13px; color: var(--muted); text-transform: uppercase; letter-spacing: 1px; margin-top: 8px; }
.summary-stats { display: grid; grid-template-columns: repeat(4,1fr); gap: 12px; margin: 24px 0; padding: 20px 0; border-top: 1px solid rgba(255,255,255,0.1); border-bottom: 1px solid rgba(255,255,255,0.1); }
.summary-stat { display: flex; flex-direction: column; align-items: center; }
.summary-stat-val { font-family: var(--font-mono); font-size: 20px; font-weight: 600; color: var(--cyan); }
.summary-stat-lbl { font-size: 9px; color: var(--muted); text-transform: uppercase; margin-top: 4px; letter-spacing: 0.3px; }
.summary-personality { margin: 20px 0; }
.summary-personality-type { font-family: var(--font-pixel); font-size: 12px; font-weight: 400; color: var(--purple); text-transform: uppercase; letter-spacing: 0.3px; }
.summary-top3 { margin: 16px 0; display: flex; flex-direction: column; gap: 6px; }
.summary-top3-label { font-size: 10px; color: var(--muted); text-transform: uppercase; letter-spacing: 0.5px; }
.summary-top3-names { font-size: 13px; color: var(--text); }
.summary-footer { margin-top: 20px; padding-top: 16px; border-top: 1px solid rgba(255,255,255,0.1); font-size: 11px; color: var(--green); font-family: var(--font-pixel); font-weight: 400; }

.screenshot-btn {
    display: flex; align-items: center; justify-content: center; gap: 10px;
    font-family: var(--font-pixel); font-size: 10px; font-weight: 400; text-transform: uppercase; letter-spacing: 0.3px;
    background: var(--green); color: #000; border: none;
    padding: 16px 32px; border-radius: 12px; margin-top: 28px;
    cursor: pointer; transition: transform 0.2s, background 0.2s;
}
.screenshot-btn:hover { background: #6ee7b7; transform: scale(1.02); }
.screenshot-btn:active { transform: scale(0.98); }
.btn-icon { font-size: 20px; }
.share-hint { font-size: 14px; color: var(--muted); margin-top: 16px; }

.progress { position: fixed; bottom: 24px; left: 50%; transform: translateX(-50%); display: flex; gap: 8px; z-index: 100; }
.dot { width: 10px; height: 10px; border-radius: 50%; background: rgba(255,255,255,0.2); transition: all 0.3s; cursor: pointer; }
.dot:hover { background: rgba(255,255,255,0.4); }
.dot.active { background: var(--green); transform: scale(1.3); }

.nav { position: fixed; top: 50%; transform: translateY(-50%); font-size: 36px; color: rgba(255,255,255,0.2); cursor: pointer; z-index: 100; padding: 24px; transition: color 0.2s; user-select: none; }
.nav:hover { color: rgba(255,255,255,0.5); }
.nav.prev { left: 8px; }
.nav.next { right: 8px; }
.nav.hidden { opacity: 0; pointer-events: none; }
</style>
</head>
<body>

<div class="gallery" id="gallery">
    <div class="slide intro">
        <div class="slide-icon">📱</div>
        <h1>CHAT<br>WRAPPED</h1>
        <p class="subtitle">your {{.Year}} texting habits, exposed</p>
        <div class="tap-hint">click anywhere to start →</div>
    </div>

    <div class="slide">
        <div class="slide-label">// TOTAL DAMAGE</div>
        <div class="big-number green">{{.Messages}}</div>
        <div class="slide-text">messages this year</div>
        <div class="stat-grid">
            <div class="stat-item"><span class="stat-num">{{.PerDay}}</span><span class="stat-lbl">/day</span></div>
            <div class="stat-item"><span class="stat-num">{{.Sent}}</span><span class="stat-lbl">sent</span></div>
            <div class="stat-item"><span class="stat-num">{{.Received}}</span><span class="stat-lbl">received</span></div>
        </div>
    </div>

    <div class="slide">
        <div class="slide-label">// KEYBOARD MILEAGE</div>
        <div class="big-number cyan">{{.Chars}}</div>
        <div class="slide-text">characters you typed</div>
        <div class="roast">that's about {{.Pages}} pages of a novel</div>
    </div>
{{if .TopName}}
    <div class="slide pink-bg">
        <div class="slide-label">// YOUR #1</div>
        <div class="slide-text">most texted person</div>
        <div class="huge-name">{{.TopName}}</div>
        <div class="big-number yellow">{{.TopCount}}</div>
        <div class="slide-text">messages</div>
    </div>

    <div class="slide">
        <div class="slide-label">// INNER CIRCLE</div>
        <div class="slide-text">your top {{len .InnerCircle}}</div>
        <div class="rank-list">
{{range .InnerCircle}}            <div class="rank-item"><span class="rank-num">{{.Rank}}</span><span class="rank-name">{{.Name}}</span><span class="rank-count">{{.Count}}</span></div>
{{end}}        </div>
    </div>
{{end}}{{if .HasGroups}}
    <div class="slide">
        <div class="slide-label">// GROUP CHATS</div>
        <div class="slide-icon">👥</div>
        <div class="big-number green">{{.GroupCount}}</div>
        <div class="slide-text">active group chats</div>
        <div class="stat-grid">
            <div class="stat-item"><span class="stat-num">{{.GroupTotal}}</span><span class="stat-lbl">total msgs</span></div>
            <div class="stat-item"><span class="stat-num">{{.GroupSent}}</span><span class="stat-lbl">sent</span></div>
            <div class="stat-item"><span class="stat-num">{{.GroupYoursPct}}%</span><span class="stat-lbl">yours</span></div>
        </div>
        <div class="badge {{.GroupClass}}">{{.GroupBadge}}</div>
    </div>
{{if .GroupRows}}
    <div class="slide orange-bg">
        <div class="slide-label">// TOP GROUP CHATS</div>
        <div class="slide-text">your most active groups</div>
        <div class="rank-list">
{{range .GroupRows}}            <div class="rank-item"><span class="rank-num">{{.Rank}}</span><span class="rank-name">{{.Name}}</span><span class="rank-count">{{.Count}}</span></div>
{{end}}        </div>
    </div>
{{end}}{{end}}
    <div class="slide purple-bg">
        <div class="slide-label">// DIAGNOSIS</div>
        <div class="slide-text">texting personality</div>
        <div class="personality-type">{{.Personality}}</div>
        <div class="roast">"{{.Tagline}}"</div>
    </div>

    <div class="slide">
        <div class="slide-label">// WHO TEXTS FIRST</div>
        <div class="slide-text">conversation initiator</div>
        <div class="big-number {{.StarterClass}}">{{.StarterPct}}<span class="pct">%</span></div>
        <div class="slide-text">of convos started by you</div>
        <div class="badge {{.StarterClass}}">{{.StarterLabel}}</div>
    </div>
{{if .HasReply}}
    <div class="slide">
        <div class="slide-label">// RESPONSE TIME</div>
        <div class="slide-text">median reply</div>
        <div class="big-number {{.ReplyClass}}">{{.ReplyMin}}</div>
        <div class="slide-text">minutes</div>
        <div class="badge {{.ReplyClass}}">{{.ReplyLabel}}</div>
    </div>
{{end}}
    <div class="slide">
        <div class="slide-label">// PEAK HOURS</div>
        <div class="slide-text">most active</div>
        <div class="big-number green">{{.PeakHour}}</div>
        <div class="slide-text">on <span class="yellow">{{.PeakDay}}s</span></div>
    </div>
{{if .LateName}}
    <div class="slide">
        <div class="slide-label">// 3AM BESTIE</div>
        <div class="slide-icon">🌙</div>
        <div class="huge-name cyan">{{.LateName}}</div>
        <div class="big-number yellow">{{.LateCount}}</div>
        <div class="slide-text">late night texts</div>
    </div>
{{end}}{{if .BusiestDay}}
    <div class="slide">
        <div class="slide-label">// BUSIEST DAY</div>
        <div class="slide-text">your most unhinged day</div>
        <div class="big-number orange">{{.BusiestDay}}</div>
        <div class="slide-text"><span class="yellow">{{.BusiestCount}}</span> messages in one day</div>
        <div class="roast">what happened??</div>
    </div>
{{end}}{{if .FanName}}
    <div class="slide">
        <div class="slide-label">// BIGGEST FAN</div>
        <div class="slide-text">texts you most</div>
        <div class="huge-name orange">{{.FanName}}</div>
        <div class="slide-text"><span class="big-number yellow" style="font-size:56px">{{.FanRatio}}</span> more than you</div>
    </div>
{{end}}{{if .SimpName}}
    <div class="slide red-bg">
        <div class="slide-label">// DOWN BAD</div>
        <div class="slide-text">you simp for</div>
        <div class="huge-name">{{.SimpName}}</div>
        <div class="slide-text">you text <span class="big-number yellow" style="font-size:56px">{{.SimpRatio}}</span> more</div>
    </div>
{{end}}{{if .Heating}}
    <div class="slide orange-bg">
        <div class="slide-label">// HEATING UP</div>
        <div class="slide-text">getting stronger lately</div>
        <div class="rank-list">
{{range .Heating}}            <div class="rank-item"><span class="rank-num">🔥</span><span class="rank-name">{{.Name}}</span><span class="rank-count green">{{.Gain}}</span></div>
{{end}}        </div>
    </div>
{{end}}{{if .Ghosted}}
    <div class="slide">
        <div class="slide-label">// GHOSTED</div>
        <div class="slide-text">they chose peace</div>
        <div class="rank-list">
{{range .Ghosted}}            <div class="rank-item"><span class="rank-num">👻</span><span class="rank-name">{{.Name}}</span><span class="rank-count"><span class="green">{{.Early}}</span>→<span class="red">{{.Late}}</span></span></div>
{{end}}        </div>
        <div class="roast">early days → lately</div>
    </div>
{{end}}{{if .HasEmoji}}
    <div class="slide">
        <div class="slide-label">// EMOJIS</div>
        <div class="slide-text">emotional range</div>
        <div class="big-number pink">{{.EmojiPct}}<span class="pct">%</span></div>
        <div class="slide-text">of your texts carry an emoji</div>
    </div>
{{end}}
    <div class="slide summary-slide">
        <div class="summary-card" id="summaryCard">
            <div class="summary-header">
                <span class="summary-logo">📱</span>
                <span class="summary-title">CHAT WRAPPED {{.Year}}</span>
            </div>
            <div class="summary-hero">
                <div class="summary-big-stat">
                    <span class="summary-big-num">{{.Messages}}</span>
                    <span class="summary-big-label">messages</span>
                </div>
            </div>
            <div class="summary-stats">
                <div class="summary-stat">
                    <span class="summary-stat-val">{{.Contacts}}</span>
                    <span class="summary-stat-lbl">people</span>
                </div>
                <div class="summary-stat">
                    <span class="summary-stat-val">{{.Chars}}</span>
                    <span class="summary-stat-lbl">chars</span>
                </div>
                <div class="summary-stat">
                    <span class="summary-stat-val">{{.StarterPct}}%</span>
                    <span class="summary-stat-lbl">starter</span>
                </div>
                <div class="summary-stat">
                    <span class="summary-stat-val">{{.ReplyCard}}</span>
                    <span class="summary-stat-lbl">response</span>
                </div>
            </div>
            <div class="summary-personality">
                <span class="summary-personality-type">{{.Personality}}</span>
            </div>
            <div class="summary-top3">
                <span class="summary-top3-label">TOP 3:</span>
                <span class="summary-top3-names">{{.Top3}}</span>
            </div>
            <div class="summary-footer">
                <span>chat-wrapped</span>
            </div>
        </div>
        <button class="screenshot-btn" onclick="takeScreenshot()">
            <span class="btn-icon">📸</span>
            <span>Save Screenshot</span>
        </button>
        <div class="share-hint">share your damage</div>
    </div>
</div>
<div class="progress" id="progress"></div>
<div class="nav prev" id="prev">‹</div>
<div class="nav next" id="next">›</div>

<script>
const YEAR = {{.Year}};
const gallery = document.getElementById('gallery');
const progressEl = document.getElementById('progress');
const prevBtn = document.getElementById('prev');
const nextBtn = document.getElementById('next');
const slides = gallery.querySelectorAll('.slide');
const total = slides.length;
let current = 0;

for (let i = 0; i < total; i++) {
    const dot = document.createElement('div');
    dot.className = 'dot' + (i === 0 ? ' active' : '');
    dot.onclick = () => goTo(i);
    progressEl.appendChild(dot);
}
const dots = progressEl.querySelectorAll('.dot');

function goTo(idx) {
    if (idx < 0 || idx >= total) return;
    slides.forEach(s => s.classList.remove('active'));
    current = idx;
    gallery.style.transform = 'translateX(-' + (current * 100) + 'vw)';
    dots.forEach((d, i) => d.classList.toggle('active', i === current));
    prevBtn.classList.toggle('hidden', current === 0);
    nextBtn.classList.toggle('hidden', current === total - 1);
    setTimeout(() => slides[current].classList.add('active'), 50);
}

document.addEventListener('click', (e) => {
    if (e.target.closest('.nav, button, .dot')) return;
    const x = e.clientX / window.innerWidth;
    if (x < 0.3) goTo(current - 1);
    else goTo(current + 1);
});

document.addEventListener('keydown', (e) => {
    if (e.key === 'ArrowRight' || e.key === ' ') { e.preventDefault(); goTo(current + 1); }
    if (e.key === 'ArrowLeft') { e.preventDefault(); goTo(current - 1); }
});

prevBtn.onclick = (e) => { e.stopPropagation(); goTo(current - 1); };
nextBtn.onclick = (e) => { e.stopPropagation(); goTo(current + 1); };

async function takeScreenshot() {
    const card = document.getElementById('summaryCard');
    const btn = document.querySelector('.screenshot-btn');
    btn.innerHTML = '<span>Saving...</span>';
    btn.disabled = true;
    try {
        const canvas = await html2canvas(card, { backgroundColor: '#0f1a2e', scale: 2, logging: false, useCORS: true });
        const link = document.createElement('a');
        link.download = 'chat_wrapped_' + YEAR + '.png';
        link.href = canvas.toDataURL('image/png');
        link.click();
        btn.innerHTML = '<span class="btn-icon">✓</span><span>Saved!</span>';
        setTimeout(() => { btn.innerHTML = '<span class="btn-icon">📸</span><span>Save Screenshot</span>'; btn.disabled = false; }, 2000);
    } catch (err) {
        btn.innerHTML = '<span class="btn-icon">📸</span><span>Save Screenshot</span>';
        btn.disabled = false;
    }
}

goTo(0);
</script>
</body></html>
`
